package session

import (
	"fmt"

	"github.com/Thermaltank/project-front/internal/domain"
)

// VistaLogin destino de la redirección cuando no hay sesión.
const VistaLogin = "/login"

// Decision resultado de evaluar el acceso a una vista protegida.
// Es función pura del estado de sesión: el guard no tiene efectos propios.
type Decision struct {
	Permitida  bool
	RedirigirA string // "" si Permitida
	Desde      string // vista solicitada originalmente, para redirigir tras el login
}

// Evaluar decide si la vista solicitada puede renderizarse con la sesión
// actual. Sin sesión, redirige al login conservando el origen (el flujo de
// login actual no usa ese origen todavía, pero se preserva).
func Evaluar(s *Store, vista string) Decision {
	if !s.IsAuthenticated() {
		return Decision{Permitida: false, RedirigirA: VistaLogin, Desde: vista}
	}
	return Decision{Permitida: true, Desde: vista}
}

// Proteger envuelve una vista protegida: la ejecuta sin cambios si hay
// sesión, o devuelve ErrNoAutorizado si corresponde redirigir al login.
func Proteger(s *Store, vista string, fn func() error) error {
	if d := Evaluar(s, vista); !d.Permitida {
		return fmt.Errorf("vista %s: %w", vista, domain.ErrNoAutorizado)
	}
	return fn()
}
