package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

// formCredenciales pide usuario y contraseña cuando no vinieron por flags.
// Es la misma pantalla para login y para registro.
func formCredenciales(titulo string, usuario, password *string) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(titulo+" — Usuario").
				Value(usuario).
				Validate(func(s string) error {
					if s == "" {
						return errors.New("el usuario es requerido")
					}
					return nil
				}),
			huh.NewInput().
				Title("Contraseña").
				EchoMode(huh.EchoModePassword).
				Value(password).
				Validate(func(s string) error {
					if s == "" {
						return errors.New("la contraseña es requerida")
					}
					return nil
				}),
		),
	)
	return form.Run()
}

func (a *App) cmdLogin() *cobra.Command {
	var usuario, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Inicia sesión contra el backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			if usuario == "" || password == "" {
				if err := formCredenciales("Iniciar sesión", &usuario, &password); err != nil {
					return err
				}
			}
			if err := a.auth.Login(cmd.Context(), usuario, password); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Sesión iniciada como %s\n", a.sesion.Usuario().Username)
			return nil
		},
	}
	cmd.Flags().StringVarP(&usuario, "usuario", "u", "", "nombre de usuario")
	cmd.Flags().StringVarP(&password, "password", "p", "", "contraseña")
	return cmd
}

func (a *App) cmdRegistro() *cobra.Command {
	var usuario, password string
	cmd := &cobra.Command{
		Use:   "registro",
		Short: "Registra un usuario nuevo (devuelve sesión directa)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if usuario == "" || password == "" {
				if err := formCredenciales("Registro", &usuario, &password); err != nil {
					return err
				}
			}
			if err := a.auth.Register(cmd.Context(), usuario, password); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Usuario registrado, sesión iniciada como %s\n", a.sesion.Usuario().Username)
			return nil
		},
	}
	cmd.Flags().StringVarP(&usuario, "usuario", "u", "", "nombre de usuario")
	cmd.Flags().StringVarP(&password, "password", "p", "", "contraseña")
	return cmd
}

func (a *App) cmdLogout() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Cierra la sesión local (no llama al servidor)",
		RunE: func(cmd *cobra.Command, args []string) error {
			a.auth.Logout()
			fmt.Fprintln(cmd.OutOrStdout(), "Sesión cerrada")
			return nil
		},
	}
}

func (a *App) cmdSesion() *cobra.Command {
	return &cobra.Command{
		Use:   "sesion",
		Short: "Muestra el estado de la sesión actual",
		RunE: func(cmd *cobra.Command, args []string) error {
			if u := a.sesion.Usuario(); u != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Autenticado como %s\n", u.Username)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Sin sesión")
			return nil
		},
	}
}
