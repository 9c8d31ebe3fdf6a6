package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidarNIT(t *testing.T) {
	aceptados := []string{"123456789", "1234567890", "123456789-1"}
	for _, nit := range aceptados {
		assert.True(t, ValidarNIT(nit), "debe aceptar %q", nit)
	}
	rechazados := []string{"12345", "ABCDEFGHI", "12345678901", "123456789-", "123456789-12", "123456789 "}
	for _, nit := range rechazados {
		assert.False(t, ValidarNIT(nit), "debe rechazar %q", nit)
	}
}

func TestValidarCelular(t *testing.T) {
	assert.True(t, ValidarCelular("3001234567"))
	assert.False(t, ValidarCelular("300123456"), "9 dígitos")
	assert.False(t, ValidarCelular("30012345678"), "11 dígitos")
	assert.False(t, ValidarCelular("300123456a"))
	assert.False(t, ValidarCelular(""))
}

func TestValidarEmail(t *testing.T) {
	assert.True(t, ValidarEmail("ana@mail.com"))
	assert.True(t, ValidarEmail("ANA.PEREZ+x@sub.dominio.co"))
	assert.False(t, ValidarEmail("ana@mail"))
	assert.False(t, ValidarEmail("ana.mail.com"))
	assert.False(t, ValidarEmail(""))
}

func TestValidarProveedor_TodoValido(t *testing.T) {
	errs := ValidarProveedor(ProveedorPayload{
		NombreProveedor: "Acme",
		NIT:             "900123456-1",
		Correo:          "a@acme.co",
		Celular:         "3001234567",
		Direccion:       "Calle 9 #10-11",
	})
	assert.True(t, errs.Ok())
}

func TestValidarProveedor_ErroresPorCampo(t *testing.T) {
	errs := ValidarProveedor(ProveedorPayload{
		NIT:     "12345",
		Correo:  "no-es-correo",
		Celular: "123",
	})
	assert.Equal(t, "El nombre del proveedor es requerido", errs["nombreProveedor"])
	assert.Equal(t, "El NIT debe tener 9-10 dígitos", errs["nit"])
	assert.Equal(t, "Ingrese un correo válido", errs["correo"])
	assert.Equal(t, "El celular debe tener 10 dígitos", errs["celular"])
	assert.Equal(t, "La dirección es requerida", errs["direccion"])
	assert.False(t, errs.Ok())
}

func TestValidarProveedor_RequeridosVacios(t *testing.T) {
	errs := ValidarProveedor(ProveedorPayload{})
	assert.Equal(t, "El NIT es requerido", errs["nit"])
	assert.Equal(t, "El correo es requerido", errs["correo"])
	assert.Equal(t, "El celular es requerido", errs["celular"])
}

// La validación acepta los nombres alternativos del formulario antes de
// validar: Email/Telefono cuentan como Correo/Celular.
func TestValidarProveedor_CoalesceAlternativos(t *testing.T) {
	errs := ValidarProveedor(ProveedorPayload{
		Nombre:    "Acme",
		NIT:       "900123456",
		Email:     "a@acme.co",
		Telefono:  "3001234567",
		Direccion: "Calle 9",
	})
	assert.True(t, errs.Ok())
}
