package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/huh"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// colacion orden alfabético español (ñ, acentos) para las tablas.
var colacion = collate.New(language.Spanish, collate.IgnoreCase)

// tabla imprime filas alineadas con encabezado. Sin ordenar: el orden de la
// lista es significativo (orden del servidor, creaciones al frente).
func tabla(w io.Writer, encabezados []string, filas [][]string) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(encabezados, "\t"))
	for _, fila := range filas {
		fmt.Fprintln(tw, strings.Join(fila, "\t"))
	}
	_ = tw.Flush()
}

// ordenarPor ordena las filas por la columna dada con colación española.
// Solo se usa cuando la pantalla lo pide explícitamente (--ordenar).
func ordenarPor(filas [][]string, col int) {
	sort.SliceStable(filas, func(i, j int) bool {
		return colacion.CompareString(filas[i][col], filas[j][col]) < 0
	})
}

// confirmar pregunta sí/no antes de una eliminación. El flag --si de cada
// comando la salta.
func confirmar(pregunta string) (bool, error) {
	ok := false
	err := huh.NewConfirm().
		Title(pregunta).
		Affirmative("Eliminar").
		Negative("Cancelar").
		Value(&ok).
		Run()
	return ok, err
}
