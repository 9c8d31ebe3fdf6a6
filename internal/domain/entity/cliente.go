package entity

// Cliente representa un cliente de la empresa, ya normalizado: todos los campos
// opcionales quedan en "" cuando el backend no los envía.
type Cliente struct {
	ID        ID     `json:"id" yaml:"id"`
	Nombre    string `json:"nombre" yaml:"nombre"`
	Correo    string `json:"correo" yaml:"correo"`
	Celular   string `json:"celular" yaml:"celular"`
	Cedula    string `json:"cedula" yaml:"cedula"`
	Direccion string `json:"direccion" yaml:"direccion"`
}
