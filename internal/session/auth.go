package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Thermaltank/project-front/internal/api"
	"github.com/Thermaltank/project-front/internal/domain"
	"github.com/Thermaltank/project-front/pkg/logger"
)

// Auth casos de uso de autenticación contra el backend: login y registro.
type Auth struct {
	store *Store
	api   *api.Client
	log   *logger.Logger
}

// NewAuth construye el caso de uso de auth.
func NewAuth(store *Store, client *api.Client, log *logger.Logger) *Auth {
	if log == nil {
		log = logger.Nop()
	}
	return &Auth{store: store, api: client, log: log}
}

type credenciales struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type respuestaToken struct {
	Token string `json:"token"`
}

// Login envía las credenciales; si el backend responde con un token lo guarda
// por la duración del proceso y deriva el usuario. El caso "200 sin token"
// se conserva como rama defensiva (ErrSinToken): no está claro que el
// contrato del backend lo permita, pero no se asume código muerto.
func (a *Auth) Login(ctx context.Context, username, password string) error {
	return a.autenticar(ctx, "/api/auth/login", username, password)
}

// Register registra al usuario. El backend devuelve directamente un token de
// sesión utilizable (no hay paso de confirmación), así que el contrato es el
// mismo que el de Login.
func (a *Auth) Register(ctx context.Context, username, password string) error {
	return a.autenticar(ctx, "/api/auth/register", username, password)
}

func (a *Auth) autenticar(ctx context.Context, path, username, password string) error {
	res, err := a.api.Post(ctx, path, credenciales{Username: username, Password: password})
	if err != nil {
		if errors.Is(err, domain.ErrNoAutorizado) {
			return fmt.Errorf("usuario o contraseña incorrectos: %w", domain.ErrNoAutorizado)
		}
		return err
	}
	if res.Status >= 400 {
		return errors.New(api.MensajeError(res.Body, "no se pudo iniciar sesión"))
	}

	var out respuestaToken
	if err := json.Unmarshal(res.Body, &out); err != nil || out.Token == "" {
		a.log.Warn().Str("path", path).Msg("respuesta de auth sin token utilizable")
		return domain.ErrSinToken
	}

	a.store.Set(out.Token, usuarioDesdeToken(out.Token))
	a.log.Info().Str("usuario", a.store.Usuario().Username).Msg("sesión iniciada")
	return nil
}

// Logout limpia la sesión localmente. No hay llamada al servidor: el token
// simplemente se descarta.
func (a *Auth) Logout() {
	a.store.Clear()
	a.log.Info().Msg("sesión cerrada")
}

// usuarioDesdeToken intenta leer claims del JWT sin verificar firma (el
// cliente no conoce el secreto) solo para mostrar un nombre. Cualquier token
// presente autentica; si los claims no se pueden leer, el usuario genérico.
func usuarioDesdeToken(token string) *Usuario {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err == nil {
		for _, k := range []string{"username", "sub", "user_id"} {
			if v, ok := claims[k].(string); ok && v != "" {
				return &Usuario{Username: v}
			}
		}
	}
	return &Usuario{Username: "usuario"}
}
