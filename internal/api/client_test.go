package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Thermaltank/project-front/internal/domain"
)

// tokensDePrueba implementación mínima de TokenSource para los tests.
type tokensDePrueba struct {
	token    string
	limpiado bool
}

func (f *tokensDePrueba) Token() string { return f.token }
func (f *tokensDePrueba) Clear()        { f.token = ""; f.limpiado = true }

func TestClient_InyectaBearerYRequestID(t *testing.T) {
	var auth, reqID string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		reqID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	c := New(ts.URL, &tokensDePrueba{token: "tok-123"})
	res, err := c.Get(context.Background(), "/api/clientes")
	require.NoError(t, err)
	assert.Equal(t, 200, res.Status)
	assert.Equal(t, "Bearer tok-123", auth)
	assert.NotEmpty(t, reqID, "toda petición lleva X-Request-ID")
}

func TestClient_SinTokenNoMandaAuthorization(t *testing.T) {
	var auth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	c := New(ts.URL, &tokensDePrueba{})
	_, err := c.Get(context.Background(), "/api/clientes")
	require.NoError(t, err)
	assert.Empty(t, auth)
}

// Un 401 limpia el token, dispara la reacción del shell y sale como error
// tipado; la capa HTTP no navega por su cuenta.
func TestClient_401LimpiaTokenYNotifica(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	tokens := &tokensDePrueba{token: "vencido"}
	notificado := false
	c := New(ts.URL, tokens)
	c.OnNoAutorizado(func() { notificado = true })

	_, err := c.Get(context.Background(), "/api/clientes")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoAutorizado)
	assert.True(t, tokens.limpiado, "el token debe descartarse ante un 401")
	assert.Empty(t, tokens.token)
	assert.True(t, notificado, "el shell debe enterarse del 401")
}

// Los demás estados >=400 no son error en esta capa: el llamador inspecciona
// el status crudo.
func TestClient_403Y500NoSonErrorAca(t *testing.T) {
	for _, status := range []int{403, 404, 500} {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			w.Write([]byte(`{"message":"algo pasó"}`))
		}))
		c := New(ts.URL, &tokensDePrueba{})
		res, err := c.Get(context.Background(), "/x")
		require.NoError(t, err, "status %d", status)
		assert.Equal(t, status, res.Status)
		ts.Close()
	}
}

func TestClient_PostSerializaJSON(t *testing.T) {
	var contentType, cuerpo string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		buf, _ := io.ReadAll(r.Body)
		cuerpo = string(buf)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":1}`))
	}))
	defer ts.Close()

	c := New(ts.URL, &tokensDePrueba{})
	res, err := c.Post(context.Background(), "/api/clientes", map[string]string{"nombre": "Ana"})
	require.NoError(t, err)
	assert.Equal(t, 201, res.Status)
	assert.Equal(t, "application/json", contentType)
	assert.JSONEq(t, `{"nombre":"Ana"}`, cuerpo)
}

func TestClient_FalloDeRedEsError(t *testing.T) {
	c := New("http://127.0.0.1:1", &tokensDePrueba{})
	_, err := c.Get(context.Background(), "/x")
	assert.Error(t, err)
}

func TestMensajeError(t *testing.T) {
	assert.Equal(t, "NIT duplicado", MensajeError([]byte(`{"message":"NIT duplicado"}`), "genérico"))
	assert.Equal(t, "genérico", MensajeError([]byte(`{}`), "genérico"))
	assert.Equal(t, "genérico", MensajeError([]byte(`no es json`), "genérico"))
	assert.Equal(t, "genérico", MensajeError(nil, "genérico"))
}
