package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/Thermaltank/project-front/internal/domain/entity"
	"github.com/Thermaltank/project-front/internal/store"
)

func (a *App) cmdCategorias() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categorias",
		Short: "Gestión de categorías",
	}
	// El backend no expone actualización de categorías: solo alta y baja.
	cmd.AddCommand(
		a.cmdCategoriasListar(),
		a.cmdCategoriasCrear(),
		a.cmdCategoriasEliminar(),
	)
	return cmd
}

func (a *App) cmdCategoriasListar() *cobra.Command {
	var ordenar bool
	cmd := &cobra.Command{
		Use:   "listar",
		Short: "Lista las categorías registradas",
		RunE: a.protegido("/categorias", func(cmd *cobra.Command, args []string) error {
			items := a.categorias.Items(cmd.Context())
			if e := a.categorias.Error(); e != "" {
				return errors.New(e)
			}
			filas := make([][]string, 0, len(items))
			for _, c := range items {
				filas = append(filas, []string{c.ID.String(), c.Nombre, c.Descripcion, c.FechaCreacion})
			}
			if ordenar {
				ordenarPor(filas, 1)
			}
			tabla(cmd.OutOrStdout(), []string{"ID", "NOMBRE", "DESCRIPCION", "FECHA"}, filas)
			return nil
		}),
	}
	cmd.Flags().BoolVar(&ordenar, "ordenar", false, "ordenar por nombre (colación española)")
	return cmd
}

func (a *App) cmdCategoriasCrear() *cobra.Command {
	var p store.CategoriaPayload
	var interactivo bool
	cmd := &cobra.Command{
		Use:   "crear",
		Short: "Registra una categoría nueva",
		RunE: a.protegido("/categorias", func(cmd *cobra.Command, args []string) error {
			if interactivo || p.Nombre == "" {
				err := huh.NewForm(
					huh.NewGroup(
						huh.NewInput().Title("Nombre").Value(&p.Nombre).
							Validate(requerido("el nombre es requerido")),
						huh.NewInput().Title("Descripción").Value(&p.Descripcion),
					),
				).Run()
				if err != nil {
					return err
				}
			}
			if p.FechaCreacion == "" {
				p.FechaCreacion = time.Now().Format("2006-01-02")
			}
			creada, err := a.categorias.CreateOne(cmd.Context(), p)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Categoría creada con id %s\n", creada.ID)
			return nil
		}),
	}
	cmd.Flags().BoolVarP(&interactivo, "interactivo", "i", false, "pedir los datos con formulario")
	cmd.Flags().StringVar(&p.Nombre, "nombre", "", "nombre de la categoría")
	cmd.Flags().StringVar(&p.Descripcion, "descripcion", "", "descripción")
	cmd.Flags().StringVar(&p.FechaCreacion, "fecha", "", "fecha de creación (YYYY-MM-DD, hoy por defecto)")
	return cmd
}

func (a *App) cmdCategoriasEliminar() *cobra.Command {
	var si bool
	cmd := &cobra.Command{
		Use:   "eliminar <id>",
		Short: "Elimina una categoría",
		Args:  cobra.ExactArgs(1),
		RunE: a.protegido("/categorias", func(cmd *cobra.Command, args []string) error {
			if !si {
				ok, err := confirmar("¿Eliminar esta categoría?")
				if err != nil || !ok {
					return err
				}
			}
			if err := a.categorias.RemoveOne(cmd.Context(), entity.ID(args[0])); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Categoría eliminada")
			return nil
		}),
	}
	cmd.Flags().BoolVar(&si, "si", false, "no pedir confirmación")
	return cmd
}
