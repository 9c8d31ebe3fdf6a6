package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Thermaltank/project-front/internal/api"
	"github.com/Thermaltank/project-front/internal/domain"
	"github.com/Thermaltank/project-front/internal/domain/entity"
	"github.com/Thermaltank/project-front/pkg/logger"
)

// ProveedorPayload datos del formulario de proveedor, con nombres
// alternativos tolerados igual que en clientes.
type ProveedorPayload struct {
	NombreProveedor string
	Nombre          string
	NIT             string
	Correo          string
	Email           string
	Celular         string
	Telefono        string
	Direccion       string
}

// proveedorBody cuerpo canónico restringido a los campos del recurso.
type proveedorBody struct {
	NombreProveedor string `json:"nombreProveedor"`
	NIT             string `json:"nit"`
	Correo          string `json:"correo"`
	Celular         string `json:"celular"`
	Direccion       string `json:"direccion"`
}

func (p ProveedorPayload) canonico() proveedorBody {
	return proveedorBody{
		NombreProveedor: primero(p.NombreProveedor, p.Nombre),
		NIT:             p.NIT,
		Correo:          primero(p.Correo, p.Email),
		Celular:         primero(p.Celular, p.Telefono),
		Direccion:       p.Direccion,
	}
}

// proveedorDTO forma cruda del backend. Algunos backends hermanos llaman al
// nombre "razonSocial", por eso la tercera alternativa.
type proveedorDTO struct {
	ID              entity.ID `json:"id"`
	AltID           entity.ID `json:"_id"`
	NombreProveedor string    `json:"nombreProveedor"`
	Nombre          string    `json:"nombre"`
	RazonSocial     string    `json:"razonSocial"`
	NIT             string    `json:"nit"`
	Correo          string    `json:"correo"`
	Email           string    `json:"email"`
	Celular         string    `json:"celular"`
	Telefono        string    `json:"telefono"`
	Direccion       string    `json:"direccion"`
}

// normalizeProveedor mapea el registro crudo a entity.Proveedor con defaults
// vacíos; ok=false descarta elementos no-objeto.
func normalizeProveedor(raw []byte) (entity.Proveedor, bool) {
	if !esObjeto(raw) {
		return entity.Proveedor{}, false
	}
	var dto proveedorDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		return entity.Proveedor{}, false
	}
	return entity.Proveedor{
		ID:              entity.ID(primero(dto.ID.String(), dto.AltID.String())),
		NombreProveedor: primero(dto.NombreProveedor, dto.Nombre, dto.RazonSocial),
		NIT:             dto.NIT,
		Correo:          primero(dto.Correo, dto.Email),
		Celular:         primero(dto.Celular, dto.Telefono),
		Direccion:       dto.Direccion,
	}, true
}

// ProveedorStore almacena la lista de proveedores y habla con /api/proveedores.
type ProveedorStore struct {
	listado[entity.Proveedor]
	api *api.Client
	log *logger.Logger
}

// NewProveedorStore construye el store; la carga inicial corre en el primer uso.
func NewProveedorStore(client *api.Client, log *logger.Logger) *ProveedorStore {
	if log == nil {
		log = logger.Nop()
	}
	return &ProveedorStore{api: client, log: log}
}

// Items devuelve la lista, disparando la carga inicial si aún no ocurrió.
func (s *ProveedorStore) Items(ctx context.Context) []entity.Proveedor {
	s.init(ctx)
	return s.listado.Items()
}

func (s *ProveedorStore) init(ctx context.Context) {
	s.inicio.Do(func() { s.fetchAll(ctx) })
}

// FetchAll recarga la colección completa; los fallos quedan en Error().
func (s *ProveedorStore) FetchAll(ctx context.Context) {
	s.inicio.Do(func() {})
	s.fetchAll(ctx)
}

func (s *ProveedorStore) fetchAll(ctx context.Context) {
	s.empezarCarga()
	res, err := s.api.Get(ctx, "/api/proveedores")
	if err != nil {
		if errors.Is(err, domain.ErrNoAutorizado) {
			s.terminarCarga(nil, msgNoAutorizado)
			return
		}
		s.terminarCarga(nil, err.Error())
		return
	}
	if res.Status == 403 {
		s.terminarCarga(nil, msgNoAutorizado)
		return
	}
	if res.Status >= 400 {
		s.terminarCarga(nil, api.MensajeError(res.Body, fmt.Sprintf("Error %d al cargar proveedores", res.Status)))
		return
	}

	elems, err := decodeLista(res.Body)
	if err != nil {
		s.terminarCarga(nil, err.Error())
		return
	}
	items := make([]entity.Proveedor, 0, len(elems))
	for _, raw := range elems {
		if p, ok := normalizeProveedor(raw); ok {
			items = append(items, p)
		}
	}
	s.log.Debug().Int("total", len(items)).Msg("proveedores cargados")
	s.terminarCarga(items, "")
}

// CreateOne crea el proveedor y antepone el registro canónico del servidor.
// La validación de formulario (ValidarProveedor) corre antes, en la pantalla;
// aquí ya solo viaja el cuerpo canónico.
func (s *ProveedorStore) CreateOne(ctx context.Context, p ProveedorPayload) (entity.Proveedor, error) {
	s.init(ctx)
	res, err := s.api.Post(ctx, "/api/proveedores", p.canonico())
	if err != nil {
		return entity.Proveedor{}, err
	}
	if res.Status == 403 {
		return entity.Proveedor{}, domain.ErrNoAutorizado
	}
	if res.Status >= 400 {
		return entity.Proveedor{}, errors.New(api.MensajeError(res.Body, "No se pudo crear el proveedor"))
	}
	creado, ok := normalizeProveedor(res.Body)
	if !ok {
		return entity.Proveedor{}, domain.ErrRespuestaMalformada
	}
	s.anteponer(creado)
	return creado, nil
}

// UpdateOne actualiza el proveedor y lo reemplaza in situ, posición intacta.
func (s *ProveedorStore) UpdateOne(ctx context.Context, id entity.ID, p ProveedorPayload) (entity.Proveedor, error) {
	s.init(ctx)
	res, err := s.api.Put(ctx, "/api/proveedores/"+id.String(), p.canonico())
	if err != nil {
		return entity.Proveedor{}, err
	}
	if res.Status == 403 {
		return entity.Proveedor{}, domain.ErrNoAutorizado
	}
	if res.Status >= 400 {
		return entity.Proveedor{}, errors.New(api.MensajeError(res.Body, "No se pudo actualizar el proveedor"))
	}
	actualizado, ok := normalizeProveedor(res.Body)
	if !ok {
		return entity.Proveedor{}, domain.ErrRespuestaMalformada
	}
	s.reemplazar(func(x entity.Proveedor) bool { return x.ID == id }, actualizado)
	return actualizado, nil
}

// RemoveOne elimina el proveedor; 404 cuenta como éxito.
func (s *ProveedorStore) RemoveOne(ctx context.Context, id entity.ID) error {
	s.init(ctx)
	res, err := s.api.Delete(ctx, "/api/proveedores/"+id.String())
	if err != nil {
		return err
	}
	if res.Status == 403 {
		return domain.ErrNoAutorizado
	}
	if res.Status >= 400 && res.Status != 404 {
		return errors.New(api.MensajeError(res.Body, "No se pudo eliminar el proveedor"))
	}
	s.quitar(func(x entity.Proveedor) bool { return x.ID == id })
	return nil
}
