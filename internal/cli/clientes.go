package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/Thermaltank/project-front/internal/domain/entity"
	"github.com/Thermaltank/project-front/internal/store"
)

func (a *App) cmdClientes() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clientes",
		Short: "Gestión de clientes",
	}
	cmd.AddCommand(
		a.cmdClientesListar(),
		a.cmdClientesCrear(),
		a.cmdClientesEditar(),
		a.cmdClientesEliminar(),
	)
	return cmd
}

func (a *App) cmdClientesListar() *cobra.Command {
	var ordenar bool
	cmd := &cobra.Command{
		Use:   "listar",
		Short: "Lista los clientes registrados",
		RunE: a.protegido("/clientes", func(cmd *cobra.Command, args []string) error {
			items := a.clientes.Items(cmd.Context())
			if e := a.clientes.Error(); e != "" {
				return errors.New(e)
			}
			filas := make([][]string, 0, len(items))
			for _, c := range items {
				filas = append(filas, []string{c.ID.String(), c.Nombre, c.Correo, c.Celular, c.Cedula, c.Direccion})
			}
			if ordenar {
				ordenarPor(filas, 1)
			}
			tabla(cmd.OutOrStdout(), []string{"ID", "NOMBRE", "CORREO", "CELULAR", "CEDULA", "DIRECCION"}, filas)
			return nil
		}),
	}
	cmd.Flags().BoolVar(&ordenar, "ordenar", false, "ordenar por nombre (colación española)")
	return cmd
}

// formCliente pantalla de alta/edición de cliente.
func formCliente(p *store.ClientePayload) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Nombre").Value(&p.Nombre).
				Validate(requerido("el nombre es requerido")),
			huh.NewInput().Title("Correo electrónico").Value(&p.Correo),
			huh.NewInput().Title("Celular").Value(&p.Celular),
			huh.NewInput().Title("Cédula").Value(&p.Cedula),
			huh.NewInput().Title("Dirección").Value(&p.Direccion),
		),
	).Run()
}

func requerido(msg string) func(string) error {
	return func(s string) error {
		if s == "" {
			return errors.New(msg)
		}
		return nil
	}
}

func (a *App) cmdClientesCrear() *cobra.Command {
	var p store.ClientePayload
	var interactivo bool
	cmd := &cobra.Command{
		Use:   "crear",
		Short: "Registra un cliente nuevo",
		RunE: a.protegido("/clientes", func(cmd *cobra.Command, args []string) error {
			if interactivo || p.Nombre == "" {
				if err := formCliente(&p); err != nil {
					return err
				}
			}
			creado, err := a.clientes.CreateOne(cmd.Context(), p)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cliente creado con id %s\n", creado.ID)
			return nil
		}),
	}
	cmd.Flags().BoolVarP(&interactivo, "interactivo", "i", false, "pedir los datos con formulario")
	cmd.Flags().StringVar(&p.Nombre, "nombre", "", "nombre del cliente")
	cmd.Flags().StringVar(&p.Correo, "correo", "", "correo electrónico")
	cmd.Flags().StringVar(&p.Celular, "celular", "", "número de celular")
	cmd.Flags().StringVar(&p.Cedula, "cedula", "", "cédula")
	cmd.Flags().StringVar(&p.Direccion, "direccion", "", "dirección")
	return cmd
}

func (a *App) cmdClientesEditar() *cobra.Command {
	var p store.ClientePayload
	cmd := &cobra.Command{
		Use:   "editar <id>",
		Short: "Actualiza un cliente existente",
		Args:  cobra.ExactArgs(1),
		RunE: a.protegido("/clientes", func(cmd *cobra.Command, args []string) error {
			id := entity.ID(args[0])
			// Precargar el formulario con los valores actuales.
			for _, c := range a.clientes.Items(cmd.Context()) {
				if c.ID == id {
					if p.Nombre == "" {
						p = store.ClientePayload{
							Nombre: c.Nombre, Correo: c.Correo, Celular: c.Celular,
							Cedula: c.Cedula, Direccion: c.Direccion,
						}
					}
					break
				}
			}
			if !cmd.Flags().Changed("nombre") {
				if err := formCliente(&p); err != nil {
					return err
				}
			}
			actualizado, err := a.clientes.UpdateOne(cmd.Context(), id, p)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cliente %s actualizado\n", actualizado.ID)
			return nil
		}),
	}
	cmd.Flags().StringVar(&p.Nombre, "nombre", "", "nombre del cliente")
	cmd.Flags().StringVar(&p.Correo, "correo", "", "correo electrónico")
	cmd.Flags().StringVar(&p.Celular, "celular", "", "número de celular")
	cmd.Flags().StringVar(&p.Cedula, "cedula", "", "cédula")
	cmd.Flags().StringVar(&p.Direccion, "direccion", "", "dirección")
	return cmd
}

func (a *App) cmdClientesEliminar() *cobra.Command {
	var si bool
	cmd := &cobra.Command{
		Use:   "eliminar <id>",
		Short: "Elimina un cliente",
		Args:  cobra.ExactArgs(1),
		RunE: a.protegido("/clientes", func(cmd *cobra.Command, args []string) error {
			if !si {
				ok, err := confirmar("¿Eliminar este cliente?")
				if err != nil || !ok {
					return err
				}
			}
			if err := a.clientes.RemoveOne(cmd.Context(), entity.ID(args[0])); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Cliente eliminado")
			return nil
		}),
	}
	cmd.Flags().BoolVar(&si, "si", false, "no pedir confirmación")
	return cmd
}
