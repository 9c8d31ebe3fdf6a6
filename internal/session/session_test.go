package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Thermaltank/project-front/internal/api"
	"github.com/Thermaltank/project-front/internal/domain"
)

// backendDeAuth levanta un backend falso de autenticación y devuelve la
// sesión y el caso de uso cableados contra él.
func backendDeAuth(t *testing.T, handler http.HandlerFunc) (*Store, *Auth) {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	store := NewStore()
	client := api.New(ts.URL, store)
	return store, NewAuth(store, client, nil)
}

// tokenFirmado genera un JWT real para los tests (la firma no se verifica en
// el cliente, solo se leen claims).
func tokenFirmado(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secreto-de-test"))
	require.NoError(t, err)
	return tok
}

// Escenario completo: login válido → token guardado → el guard permite la
// vista protegida. Logout → token fuera → el guard redirige esa misma vista
// al login.
func TestLoginLogoutConGuard(t *testing.T) {
	tok := tokenFirmado(t, jwt.MapClaims{"sub": "jhon"})
	store, auth := backendDeAuth(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		w.Write([]byte(`{"token":"` + tok + `"}`))
	})

	require.NoError(t, auth.Login(context.Background(), "jhon", "clave"))
	assert.True(t, store.IsAuthenticated())
	assert.Equal(t, tok, store.Token())

	d := Evaluar(store, "/clientes")
	assert.True(t, d.Permitida)
	assert.Empty(t, d.RedirigirA)

	auth.Logout()
	assert.False(t, store.IsAuthenticated())
	assert.Empty(t, store.Token())
	assert.Nil(t, store.Usuario())

	d = Evaluar(store, "/clientes")
	assert.False(t, d.Permitida)
	assert.Equal(t, VistaLogin, d.RedirigirA)
	assert.Equal(t, "/clientes", d.Desde, "se conserva la vista solicitada")
}

func TestLogin_PrefiereMensajeDelServidor(t *testing.T) {
	_, auth := backendDeAuth(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"usuario bloqueado"}`))
	})
	err := auth.Login(context.Background(), "jhon", "clave")
	require.Error(t, err)
	assert.Equal(t, "usuario bloqueado", err.Error())
}

func TestLogin_401EsCredencialesInvalidas(t *testing.T) {
	store, auth := backendDeAuth(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	err := auth.Login(context.Background(), "jhon", "mala")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoAutorizado)
	assert.False(t, store.IsAuthenticated())
}

// Rama defensiva: el backend responde 200 pero sin token utilizable. No está
// claro que el contrato lo permita, pero no se asume código muerto.
func TestLogin_OKSinTokenEsError(t *testing.T) {
	store, auth := backendDeAuth(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})
	err := auth.Login(context.Background(), "jhon", "clave")
	assert.ErrorIs(t, err, domain.ErrSinToken)
	assert.False(t, store.IsAuthenticated())
}

// El registro devuelve sesión directa, sin paso de confirmación.
func TestRegister_IniciaSesionDirecta(t *testing.T) {
	store, auth := backendDeAuth(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/register", r.URL.Path)
		w.Write([]byte(`{"token":"abc"}`))
	})
	require.NoError(t, auth.Register(context.Background(), "nueva", "clave"))
	assert.True(t, store.IsAuthenticated())
}

func TestUsuarioDesdeToken(t *testing.T) {
	t.Run("claim sub", func(t *testing.T) {
		u := usuarioDesdeToken(tokenFirmado(t, jwt.MapClaims{"sub": "maria"}))
		assert.Equal(t, "maria", u.Username)
	})
	t.Run("claim username gana sobre sub", func(t *testing.T) {
		u := usuarioDesdeToken(tokenFirmado(t, jwt.MapClaims{"username": "pepe", "sub": "id-9"}))
		assert.Equal(t, "pepe", u.Username)
	})
	t.Run("token opaco no-JWT autentica igual con usuario genérico", func(t *testing.T) {
		u := usuarioDesdeToken("token-opaco-cualquiera")
		assert.Equal(t, "usuario", u.Username)
	})
}

func TestProteger(t *testing.T) {
	store := NewStore()

	ejecutada := false
	err := Proteger(store, "/proveedores", func() error { ejecutada = true; return nil })
	assert.ErrorIs(t, err, domain.ErrNoAutorizado)
	assert.False(t, ejecutada, "sin sesión la vista no corre")

	store.Set("tok", &Usuario{Username: "usuario"})
	require.NoError(t, Proteger(store, "/proveedores", func() error { ejecutada = true; return nil }))
	assert.True(t, ejecutada)
}

// Un 401 en cualquier operación de recursos tumba la sesión: el adaptador
// HTTP limpia el token vía TokenSource y el guard vuelve a redirigir.
func TestStore_401EnOperacionLimpiaSesion(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	t.Cleanup(ts.Close)

	store := NewStore()
	store.Set("vencido", &Usuario{Username: "usuario"})
	client := api.New(ts.URL, store)

	_, err := client.Get(context.Background(), "/api/clientes")
	assert.ErrorIs(t, err, domain.ErrNoAutorizado)
	assert.False(t, store.IsAuthenticated())
	assert.False(t, Evaluar(store, "/clientes").Permitida)
}

// El token vive solo en memoria: dos stores son sesiones independientes.
func TestStore_SesionesIndependientes(t *testing.T) {
	a, b := NewStore(), NewStore()
	a.Set("tok-a", &Usuario{Username: "a"})
	assert.True(t, a.IsAuthenticated())
	assert.False(t, b.IsAuthenticated())
}
