package store

import (
	"regexp"
	"strings"
)

// Validación local de formularios: corre antes de tocar el servidor y
// reporta errores por campo con mensajes listos para mostrar.

// Errores errores de validación indexados por campo.
type Errores map[string]string

// Ok indica que no hay errores de validación.
func (e Errores) Ok() bool { return len(e) == 0 }

var (
	reEmail   = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}$`)
	reCelular = regexp.MustCompile(`^[0-9]{10}$`)
	// NIT colombiano: 9-10 dígitos con dígito de verificación opcional.
	reNIT = regexp.MustCompile(`^[0-9]{9,10}(-[0-9])?$`)
)

// ValidarEmail formato de correo electrónico.
func ValidarEmail(s string) bool { return reEmail.MatchString(s) }

// ValidarCelular exactamente 10 dígitos.
func ValidarCelular(s string) bool { return reCelular.MatchString(s) }

// ValidarNIT 9-10 dígitos, guion y dígito de verificación opcionales.
func ValidarNIT(s string) bool { return reNIT.MatchString(s) }

// ValidarProveedor valida el formulario de proveedor campo por campo sobre
// los valores ya coalescidos. Devuelve un mapa vacío si todo está bien.
func ValidarProveedor(p ProveedorPayload) Errores {
	b := p.canonico()
	errs := Errores{}
	if strings.TrimSpace(b.NombreProveedor) == "" {
		errs["nombreProveedor"] = "El nombre del proveedor es requerido"
	}
	if strings.TrimSpace(b.NIT) == "" {
		errs["nit"] = "El NIT es requerido"
	} else if !ValidarNIT(b.NIT) {
		errs["nit"] = "El NIT debe tener 9-10 dígitos"
	}
	if strings.TrimSpace(b.Correo) == "" {
		errs["correo"] = "El correo es requerido"
	} else if !ValidarEmail(b.Correo) {
		errs["correo"] = "Ingrese un correo válido"
	}
	if strings.TrimSpace(b.Celular) == "" {
		errs["celular"] = "El celular es requerido"
	} else if !ValidarCelular(b.Celular) {
		errs["celular"] = "El celular debe tener 10 dígitos"
	}
	if strings.TrimSpace(b.Direccion) == "" {
		errs["direccion"] = "La dirección es requerida"
	}
	return errs
}
