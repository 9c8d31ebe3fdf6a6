package entity

// Categoria representa una categoría de productos.
// FechaCreacion viaja ya truncada a fecha (YYYY-MM-DD), sin hora.
type Categoria struct {
	ID            ID     `json:"id" yaml:"id"`
	Nombre        string `json:"nombre" yaml:"nombre"`
	Descripcion   string `json:"descripcion" yaml:"descripcion"`
	FechaCreacion string `json:"fechaCreacion" yaml:"fechaCreacion"`
}
