// Package cli es la consola administrativa: las "pantallas" que consumen los
// stores. Formularios interactivos con huh, tablas con tabwriter. La lógica
// de datos vive en internal/store y internal/session; aquí solo hay
// presentación y cableado de comandos.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Thermaltank/project-front/internal/api"
	"github.com/Thermaltank/project-front/internal/domain"
	"github.com/Thermaltank/project-front/internal/session"
	"github.com/Thermaltank/project-front/internal/store"
	"github.com/Thermaltank/project-front/pkg/config"
	"github.com/Thermaltank/project-front/pkg/logger"
)

// App agrupa las dependencias compartidas por los comandos: sesión, cliente
// HTTP y los tres stores. Todo se pasa por referencia, sin estado global.
type App struct {
	cfg         *config.Config
	log         *logger.Logger
	sesion      *session.Store
	auth        *session.Auth
	clientes    *store.ClienteStore
	proveedores *store.ProveedorStore
	categorias  *store.CategoriaStore
}

// NewApp carga configuración y arma el grafo de dependencias:
// config → logger → sesión → api.Client → auth + stores.
func NewApp() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("cargar configuración: %w", err)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	sesion := session.NewStore()
	cliente := api.New(cfg.API.BaseURL, sesion,
		api.ConTimeout(cfg.API.Timeout()),
		api.ConLogger(log),
	)

	a := &App{
		cfg:         cfg,
		log:         log,
		sesion:      sesion,
		auth:        session.NewAuth(sesion, cliente, log),
		clientes:    store.NewClienteStore(cliente, log),
		proveedores: store.NewProveedorStore(cliente, log),
		categorias:  store.NewCategoriaStore(cliente, log),
	}

	// El shell observa el canal de "no autorizado": la capa HTTP ya limpió
	// el token; la reacción (volver al login) se decide acá.
	cliente.OnNoAutorizado(func() {
		fmt.Fprintln(os.Stderr, "Sesión expirada. Vuelve a iniciar sesión con `admin login`.")
	})

	return a, nil
}

// Root arma el árbol de comandos.
func (a *App) Root() *cobra.Command {
	root := &cobra.Command{
		Use:           "admin",
		Short:         "Consola administrativa de clientes, proveedores y categorías",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		a.cmdLogin(),
		a.cmdRegistro(),
		a.cmdLogout(),
		a.cmdSesion(),
		a.cmdClientes(),
		a.cmdProveedores(),
		a.cmdCategorias(),
		a.cmdExportar(),
	)
	return root
}

// protegido envuelve el run de un comando con el guard de rutas: sin sesión,
// redirige al login en vez de ejecutar la vista.
func (a *App) protegido(vista string, run func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if d := session.Evaluar(a.sesion, vista); !d.Permitida {
			fmt.Fprintf(cmd.ErrOrStderr(), "No autorizado. Inicia sesión (`admin login`) para volver a %s.\n", d.Desde)
			return fmt.Errorf("vista %s: %w", d.Desde, domain.ErrNoAutorizado)
		}
		return run(cmd, args)
	}
}
