package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	// ErrNoAutorizado el backend respondió 401/403; el token ya no sirve.
	ErrNoAutorizado = errors.New("no autorizado. Inicia sesión")
	// ErrNoEncontrado el recurso no existe en el backend.
	ErrNoEncontrado = errors.New("recurso no encontrado")
	// ErrRespuestaMalformada el cuerpo no es ni un arreglo ni un sobre {content: [...]}.
	ErrRespuestaMalformada = errors.New("respuesta del servidor malformada")
	// ErrEntradaInvalida el formulario no pasó la validación local.
	ErrEntradaInvalida = errors.New("entrada inválida")
	// ErrSinToken el login respondió OK pero sin token utilizable.
	ErrSinToken = errors.New("no se pudo iniciar sesión")
)
