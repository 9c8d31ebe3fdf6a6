// Package store implementa los almacenes de recursos de la consola:
// clientes, proveedores y categorías. Cada store es el dueño exclusivo de su lista en
// memoria (no hay sincronización entre stores) y expone las operaciones
// fetchAll/createOne/updateOne/removeOne con reconciliación local:
// lo creado se antepone, lo actualizado se reemplaza en su posición y lo
// eliminado se quita solo cuando el servidor confirma.
//
// Política de errores: las lecturas nunca devuelven error, lo convierten en
// estado (Error()); las escrituras devuelven el error al llamador y no tocan
// el estado de error del store. Las pantallas deciden cómo mostrar fallos de
// escritura.
package store

import (
	"encoding/json"
	"sync"

	"github.com/Thermaltank/project-front/internal/domain"
)

// msgNoAutorizado mensaje fijo para 401/403, igual en los tres recursos.
const msgNoAutorizado = "No autorizado. Inicia sesión."

// listado estado compartido de un store de recursos: items ordenados,
// bandera de carga y último error de lectura. El mutex protege el estado;
// dos FetchAll en vuelo siguen siendo posibles y gana la última respuesta
// en resolver (limitación aceptada, sin de-duplicación).
type listado[T any] struct {
	mu      sync.Mutex
	items   []T
	loading bool
	err     string
	inicio  sync.Once
}

// Items devuelve una copia de la lista normalizada, en el orden del servidor
// con las creaciones recientes al frente.
func (l *listado[T]) Items() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// Loading indica si hay una carga en curso.
func (l *listado[T]) Loading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loading
}

// Error devuelve el último error de lectura, o "" si no hay.
func (l *listado[T]) Error() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

func (l *listado[T]) empezarCarga() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.loading = true
	l.err = ""
}

// terminarCarga cierra el ciclo de un fetchAll: con errMsg vacío adopta la
// lista, con error la resetea a vacía. Siempre apaga loading.
func (l *listado[T]) terminarCarga(items []T, errMsg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.loading = false
	l.err = errMsg
	if errMsg != "" {
		l.items = []T{}
		return
	}
	l.items = items
}

// anteponer inserta el item al frente (orden más-reciente-primero para lo
// recién creado, sin importar el orden que use el servidor).
func (l *listado[T]) anteponer(item T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = append([]T{item}, l.items...)
}

// reemplazar sustituye in situ el primer item que cumpla match, conservando
// la posición. Los demás elementos no se tocan.
func (l *listado[T]) reemplazar(match func(T) bool, item T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.items {
		if match(l.items[i]) {
			l.items[i] = item
			return
		}
	}
}

// quitar elimina de la lista todos los items que cumplan match.
func (l *listado[T]) quitar(match func(T) bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	filtrados := l.items[:0]
	for _, it := range l.items {
		if !match(it) {
			filtrados = append(filtrados, it)
		}
	}
	l.items = filtrados
}

// decodeLista es la frontera tipada para listados del backend: acepta tanto
// un arreglo pelado como el sobre {content: [...]}; cualquier otra forma es
// ErrRespuestaMalformada en lugar de una coerción silenciosa.
func decodeLista(body []byte) ([]json.RawMessage, error) {
	var arr []json.RawMessage
	if err := json.Unmarshal(body, &arr); err == nil {
		return arr, nil
	}
	var sobre struct {
		Content []json.RawMessage `json:"content"`
	}
	if err := json.Unmarshal(body, &sobre); err == nil && sobre.Content != nil {
		return sobre.Content, nil
	}
	return nil, domain.ErrRespuestaMalformada
}

// esObjeto filtra elementos que no son objetos JSON; el normalizador
// descarta nulls y escalares sueltos dentro de la lista.
func esObjeto(raw []byte) bool {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case '{':
			return true
		default:
			return false
		}
	}
	return false
}

// primero devuelve el primer valor no vacío (coalescencia de nombres
// alternativos del backend: correo/email, celular/telefono, etc.).
func primero(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
