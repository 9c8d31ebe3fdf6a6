// Package api implementa el adaptador HTTP hacia el backend REST.
//
// Agrega el header Authorization con el bearer token de la sesión antes de
// cada petición y, ante un 401, limpia el token y avisa al shell de la
// aplicación para que éste decida la "navegación" (volver al login). El
// adaptador en sí no navega: expone el 401 como error tipado
// (domain.ErrNoAutorizado).
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Thermaltank/project-front/internal/domain"
	"github.com/Thermaltank/project-front/pkg/logger"
)

// TokenSource provee el token de sesión a inyectar en cada petición.
// Lo implementa session.Store; se pasa por inyección, nunca como global.
type TokenSource interface {
	// Token devuelve el bearer token actual, o "" si no hay sesión.
	Token() string
	// Clear descarta el token (se invoca cuando el backend responde 401).
	Clear()
}

// Respuesta es la respuesta cruda de una operación: el adaptador no convierte
// estados >=400 en error (salvo el 401), los llamadores inspeccionan Status
// y deciden qué mensaje mostrar.
type Respuesta struct {
	Status int
	Body   []byte
}

// Client adaptador HTTP: base URL configurable, token por petición,
// X-Request-ID para correlación con los logs del backend.
type Client struct {
	baseURL        string
	http           *http.Client
	tokens         TokenSource
	onNoAutorizado func()
	log            *logger.Logger
}

// Option configura el cliente.
type Option func(*Client)

// ConTimeout fija el timeout del http.Client. Cero = sin límite.
func ConTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// ConHTTPClient reemplaza el http.Client interno (tests, transports especiales).
func ConHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// ConLogger inyecta el logger.
func ConLogger(l *logger.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New construye el cliente. baseURL es la dirección del backend
// (ej. "http://localhost:8080"); tokens es la sesión que provee el bearer.
func New(baseURL string, tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		tokens:  tokens,
		log:     logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OnNoAutorizado registra la reacción del shell ante un 401 (típicamente
// "volver al login"). El adaptador limpia el token antes de invocarla.
func (c *Client) OnNoAutorizado(fn func()) {
	c.onNoAutorizado = fn
}

// Get emite un GET y devuelve la respuesta cruda.
func (c *Client) Get(ctx context.Context, path string) (*Respuesta, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

// Post emite un POST con cuerpo JSON.
func (c *Client) Post(ctx context.Context, path string, body any) (*Respuesta, error) {
	return c.do(ctx, http.MethodPost, path, body)
}

// Put emite un PUT con cuerpo JSON.
func (c *Client) Put(ctx context.Context, path string, body any) (*Respuesta, error) {
	return c.do(ctx, http.MethodPut, path, body)
}

// Delete emite un DELETE.
func (c *Client) Delete(ctx context.Context, path string) (*Respuesta, error) {
	return c.do(ctx, http.MethodDelete, path, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body any) (*Respuesta, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("serializar cuerpo: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("construir petición: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if t := c.tokens.Token(); t != "" {
		req.Header.Set("Authorization", "Bearer "+t)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("method", method).Str("path", path).Msg("fallo de red")
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("leer respuesta: %w", err)
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Msg("petición al backend")

	// 401: el token ya no sirve. Se descarta y se avisa al shell; la
	// "redirección al login" es decisión del shell, no de esta capa.
	if resp.StatusCode == http.StatusUnauthorized {
		c.tokens.Clear()
		if c.onNoAutorizado != nil {
			c.onNoAutorizado()
		}
		return nil, fmt.Errorf("%s %s: %w", method, path, domain.ErrNoAutorizado)
	}

	return &Respuesta{Status: resp.StatusCode, Body: raw}, nil
}

// MensajeError extrae el campo {message} del cuerpo de error del backend;
// si no viene, devuelve el mensaje alternativo.
func MensajeError(body []byte, alternativo string) string {
	var e struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &e); err == nil && e.Message != "" {
		return e.Message
	}
	return alternativo
}
