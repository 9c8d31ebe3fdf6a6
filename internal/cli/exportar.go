package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Thermaltank/project-front/internal/domain/entity"
)

// respaldo estructura del archivo YAML de exportación.
type respaldo struct {
	Exportado   string             `yaml:"exportado"`
	Clientes    []entity.Cliente   `yaml:"clientes"`
	Proveedores []entity.Proveedor `yaml:"proveedores"`
	Categorias  []entity.Categoria `yaml:"categorias"`
}

func (a *App) cmdExportar() *cobra.Command {
	var salida string
	cmd := &cobra.Command{
		Use:   "exportar",
		Short: "Exporta clientes, proveedores y categorías a un archivo YAML",
		RunE: a.protegido("/exportar", func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			r := respaldo{
				Exportado:   time.Now().Format(time.RFC3339),
				Clientes:    a.clientes.Items(ctx),
				Proveedores: a.proveedores.Items(ctx),
				Categorias:  a.categorias.Items(ctx),
			}
			for _, e := range []string{a.clientes.Error(), a.proveedores.Error(), a.categorias.Error()} {
				if e != "" {
					return errors.New(e)
				}
			}
			raw, err := yaml.Marshal(r)
			if err != nil {
				return fmt.Errorf("serializar respaldo: %w", err)
			}
			if salida == "" || salida == "-" {
				_, err = cmd.OutOrStdout().Write(raw)
				return err
			}
			if err := os.WriteFile(salida, raw, 0o644); err != nil {
				return fmt.Errorf("escribir %s: %w", salida, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Respaldo escrito en %s\n", salida)
			return nil
		}),
	}
	cmd.Flags().StringVarP(&salida, "salida", "o", "", "archivo de salida (stdout por defecto)")
	return cmd
}
