package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/Thermaltank/project-front/internal/domain/entity"
	"github.com/Thermaltank/project-front/internal/store"
	"github.com/Thermaltank/project-front/pkg/nit"
)

func (a *App) cmdProveedores() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "proveedores",
		Short: "Gestión de proveedores",
	}
	cmd.AddCommand(
		a.cmdProveedoresListar(),
		a.cmdProveedoresCrear(),
		a.cmdProveedoresEditar(),
		a.cmdProveedoresEliminar(),
	)
	return cmd
}

func (a *App) cmdProveedoresListar() *cobra.Command {
	var ordenar bool
	cmd := &cobra.Command{
		Use:   "listar",
		Short: "Lista los proveedores registrados",
		RunE: a.protegido("/proveedores", func(cmd *cobra.Command, args []string) error {
			items := a.proveedores.Items(cmd.Context())
			if e := a.proveedores.Error(); e != "" {
				return errors.New(e)
			}
			filas := make([][]string, 0, len(items))
			for _, p := range items {
				filas = append(filas, []string{p.ID.String(), p.NombreProveedor, p.NIT, p.Correo, p.Celular, p.Direccion})
			}
			if ordenar {
				ordenarPor(filas, 1)
			}
			tabla(cmd.OutOrStdout(), []string{"ID", "PROVEEDOR", "NIT", "CORREO", "CELULAR", "DIRECCION"}, filas)
			return nil
		}),
	}
	cmd.Flags().BoolVar(&ordenar, "ordenar", false, "ordenar por nombre (colación española)")
	return cmd
}

// formProveedor pantalla de alta/edición con validación por campo:
// requeridos, NIT de 9-10 dígitos, celular de 10, correo con formato válido.
func formProveedor(p *store.ProveedorPayload) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Nombre del proveedor").Value(&p.NombreProveedor).
				Validate(requerido("El nombre del proveedor es requerido")),
			huh.NewInput().Title("NIT").Value(&p.NIT).
				Validate(func(s string) error {
					if s == "" {
						return errors.New("El NIT es requerido")
					}
					if !store.ValidarNIT(s) {
						return errors.New("El NIT debe tener 9-10 dígitos")
					}
					return nil
				}),
			huh.NewInput().Title("Correo electrónico").Value(&p.Correo).
				Validate(func(s string) error {
					if s == "" {
						return errors.New("El correo es requerido")
					}
					if !store.ValidarEmail(s) {
						return errors.New("Ingrese un correo válido")
					}
					return nil
				}),
			huh.NewInput().Title("Celular").Value(&p.Celular).
				Validate(func(s string) error {
					if s == "" {
						return errors.New("El celular es requerido")
					}
					if !store.ValidarCelular(s) {
						return errors.New("El celular debe tener 10 dígitos")
					}
					return nil
				}),
			huh.NewInput().Title("Dirección").Value(&p.Direccion).
				Validate(requerido("La dirección es requerida")),
		),
	).Run()
}

// validarProveedor corre la validación local y la muestra por campo. Nunca
// toca el servidor: un formulario inválido no genera petición.
func validarProveedor(cmd *cobra.Command, p store.ProveedorPayload) error {
	errs := store.ValidarProveedor(p)
	if !errs.Ok() {
		for campo, msg := range errs {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", campo, msg)
		}
		return errors.New("formulario de proveedor inválido")
	}
	// Aviso no bloqueante: el backend es quien rechaza NITs de verdad; acá
	// solo se advierte si el dígito de verificación no cuadra.
	if _, err := nit.DigitoCoincide(p.NIT); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Aviso: %v\n", err)
	}
	return nil
}

func (a *App) cmdProveedoresCrear() *cobra.Command {
	var p store.ProveedorPayload
	var interactivo bool
	cmd := &cobra.Command{
		Use:   "crear",
		Short: "Registra un proveedor nuevo",
		RunE: a.protegido("/proveedores", func(cmd *cobra.Command, args []string) error {
			if interactivo || p.NombreProveedor == "" {
				if err := formProveedor(&p); err != nil {
					return err
				}
			}
			if err := validarProveedor(cmd, p); err != nil {
				return err
			}
			creado, err := a.proveedores.CreateOne(cmd.Context(), p)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Proveedor creado con id %s\n", creado.ID)
			return nil
		}),
	}
	cmd.Flags().BoolVarP(&interactivo, "interactivo", "i", false, "pedir los datos con formulario")
	cmd.Flags().StringVar(&p.NombreProveedor, "nombre", "", "nombre del proveedor")
	cmd.Flags().StringVar(&p.NIT, "nit", "", "NIT (9-10 dígitos)")
	cmd.Flags().StringVar(&p.Correo, "correo", "", "correo electrónico")
	cmd.Flags().StringVar(&p.Celular, "celular", "", "celular (10 dígitos)")
	cmd.Flags().StringVar(&p.Direccion, "direccion", "", "dirección")
	return cmd
}

func (a *App) cmdProveedoresEditar() *cobra.Command {
	var p store.ProveedorPayload
	cmd := &cobra.Command{
		Use:   "editar <id>",
		Short: "Actualiza un proveedor existente",
		Args:  cobra.ExactArgs(1),
		RunE: a.protegido("/proveedores", func(cmd *cobra.Command, args []string) error {
			id := entity.ID(args[0])
			for _, x := range a.proveedores.Items(cmd.Context()) {
				if x.ID == id {
					if p.NombreProveedor == "" {
						p = store.ProveedorPayload{
							NombreProveedor: x.NombreProveedor, NIT: x.NIT,
							Correo: x.Correo, Celular: x.Celular, Direccion: x.Direccion,
						}
					}
					break
				}
			}
			if !cmd.Flags().Changed("nombre") {
				if err := formProveedor(&p); err != nil {
					return err
				}
			}
			if err := validarProveedor(cmd, p); err != nil {
				return err
			}
			actualizado, err := a.proveedores.UpdateOne(cmd.Context(), id, p)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Proveedor %s actualizado\n", actualizado.ID)
			return nil
		}),
	}
	cmd.Flags().StringVar(&p.NombreProveedor, "nombre", "", "nombre del proveedor")
	cmd.Flags().StringVar(&p.NIT, "nit", "", "NIT (9-10 dígitos)")
	cmd.Flags().StringVar(&p.Correo, "correo", "", "correo electrónico")
	cmd.Flags().StringVar(&p.Celular, "celular", "", "celular (10 dígitos)")
	cmd.Flags().StringVar(&p.Direccion, "direccion", "", "dirección")
	return cmd
}

func (a *App) cmdProveedoresEliminar() *cobra.Command {
	var si bool
	cmd := &cobra.Command{
		Use:   "eliminar <id>",
		Short: "Elimina un proveedor",
		Args:  cobra.ExactArgs(1),
		RunE: a.protegido("/proveedores", func(cmd *cobra.Command, args []string) error {
			if !si {
				ok, err := confirmar("¿Eliminar este proveedor?")
				if err != nil || !ok {
					return err
				}
			}
			if err := a.proveedores.RemoveOne(cmd.Context(), entity.ID(args[0])); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Proveedor eliminado")
			return nil
		}),
	}
	cmd.Flags().BoolVar(&si, "si", false, "no pedir confirmación")
	return cmd
}
