package store

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Thermaltank/project-front/internal/api"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test: backend falso con httptest + sesión mínima
// ──────────────────────────────────────────────────────────────────────────────

type tokensDePrueba struct {
	token string
}

func (f *tokensDePrueba) Token() string { return f.token }
func (f *tokensDePrueba) Clear()        { f.token = "" }

// clienteDePrueba levanta un backend falso y devuelve un api.Client apuntando
// a él, con un token presente.
func clienteDePrueba(t *testing.T, handler http.HandlerFunc) *api.Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return api.New(ts.URL, &tokensDePrueba{token: "tok-test"})
}

func respondeJSON(t *testing.T, w http.ResponseWriter, status int, body string) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err := w.Write([]byte(body))
	require.NoError(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// decodeLista: frontera tipada sobre las dos formas de respuesta
// ──────────────────────────────────────────────────────────────────────────────

func TestDecodeLista_ArregloPeladoYSobreSonEquivalentes(t *testing.T) {
	pelado, err := decodeLista([]byte(`[{"id":1},{"id":2}]`))
	require.NoError(t, err)
	sobre, err := decodeLista([]byte(`{"content":[{"id":1},{"id":2}]}`))
	require.NoError(t, err)

	require.Len(t, pelado, 2)
	require.Len(t, sobre, 2)
	for i := range pelado {
		assert.JSONEq(t, string(pelado[i]), string(sobre[i]))
	}
}

func TestDecodeLista_FormasMalformadas(t *testing.T) {
	casos := []string{
		`{"total": 3}`,     // objeto sin content
		`{"content": 5}`,   // content no-arreglo
		`"hola"`,           // string
		`12`,               // número
		`{"content":null}`, // sobre con content null
	}
	for _, c := range casos {
		_, err := decodeLista([]byte(c))
		assert.Error(t, err, "entrada: %s", c)
	}
}

func TestDecodeLista_ArregloVacio(t *testing.T) {
	elems, err := decodeLista([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, elems)
}

// ──────────────────────────────────────────────────────────────────────────────
// listado: mecánica local compartida
// ──────────────────────────────────────────────────────────────────────────────

func TestListado_ItemsDevuelveCopia(t *testing.T) {
	l := &listado[int]{}
	l.terminarCarga([]int{1, 2, 3}, "")

	copia := l.Items()
	copia[0] = 99
	assert.Equal(t, []int{1, 2, 3}, l.Items(), "mutar la copia no toca el store")
}

func TestListado_ErrorReseteaItems(t *testing.T) {
	l := &listado[int]{}
	l.terminarCarga([]int{1, 2}, "")
	l.empezarCarga()
	assert.True(t, l.Loading())

	l.terminarCarga(nil, "algo falló")
	assert.False(t, l.Loading(), "loading siempre se apaga al completar")
	assert.Equal(t, "algo falló", l.Error())
	assert.Empty(t, l.Items())
}

func TestListado_EmpezarCargaLimpiaError(t *testing.T) {
	l := &listado[int]{}
	l.terminarCarga(nil, "viejo")
	l.empezarCarga()
	assert.Empty(t, l.Error())
}
