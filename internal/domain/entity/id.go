package entity

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ID identificador opaco asignado por el servidor. El cliente nunca fabrica ids:
// una entidad sin persistir lleva ID vacío. En el wire puede llegar como string,
// como número o como null según el backend, por eso el unmarshal flexible.
type ID string

// Vacio indica que la entidad aún no fue persistida.
func (id ID) Vacio() bool { return id == "" }

func (id ID) String() string { return string(id) }

// UnmarshalJSON acepta string, número entero o null.
func (id *ID) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*id = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*id = ID(n.String())
		return nil
	}
	// float con decimales u otro tipo raro: último intento como float64
	var f float64
	if err := json.Unmarshal(b, &f); err == nil {
		*id = ID(strconv.FormatFloat(f, 'f', -1, 64))
		return nil
	}
	return fmt.Errorf("id con formato inesperado: %s", string(b))
}

// MarshalJSON serializa el ID como string, o null si está vacío.
func (id ID) MarshalJSON() ([]byte, error) {
	if id == "" {
		return []byte("null"), nil
	}
	return json.Marshal(string(id))
}
