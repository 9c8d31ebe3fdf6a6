package entity

// Proveedor representa un proveedor con sus datos comerciales.
// NIT colombiano: 9-10 dígitos con dígito de verificación opcional.
type Proveedor struct {
	ID              ID     `json:"id" yaml:"id"`
	NombreProveedor string `json:"nombreProveedor" yaml:"nombreProveedor"`
	NIT             string `json:"nit" yaml:"nit"`
	Correo          string `json:"correo" yaml:"correo"`
	Celular         string `json:"celular" yaml:"celular"`
	Direccion       string `json:"direccion" yaml:"direccion"`
}
