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

// ClientePayload datos de un formulario de cliente. Tolera los nombres
// alternativos que usan algunas pantallas (correo/email, celular/telefono);
// el cuerpo canónico que viaja al backend se construye con canonico().
type ClientePayload struct {
	Nombre    string
	Correo    string
	Email     string
	Celular   string
	Telefono  string
	Cedula    string
	Direccion string
}

// clienteBody cuerpo canónico del recurso: solo los campos conocidos, como
// defensa contra campos extra que arrastre la pantalla.
type clienteBody struct {
	Nombre    string `json:"nombre"`
	Correo    string `json:"correo"`
	Celular   string `json:"celular"`
	Cedula    string `json:"cedula"`
	Direccion string `json:"direccion"`
}

func (p ClientePayload) canonico() clienteBody {
	return clienteBody{
		Nombre:    p.Nombre,
		Correo:    primero(p.Correo, p.Email),
		Celular:   primero(p.Celular, p.Telefono),
		Cedula:    p.Cedula,
		Direccion: p.Direccion,
	}
}

// clienteDTO forma cruda que puede enviar el backend, con alternativas de
// nombre por campo.
type clienteDTO struct {
	ID        entity.ID `json:"id"`
	AltID     entity.ID `json:"_id"`
	Nombre    string    `json:"nombre"`
	Correo    string    `json:"correo"`
	Email     string    `json:"email"`
	Celular   string    `json:"celular"`
	Telefono  string    `json:"telefono"`
	Cedula    string    `json:"cedula"`
	Direccion string    `json:"direccion"`
}

// normalizeCliente mapea un registro crudo del backend a la forma estable de
// entity.Cliente: campos ausentes quedan en "", ids alternativos (_id) se
// aceptan. Devuelve ok=false para elementos que no son objetos o no decodifican.
func normalizeCliente(raw []byte) (entity.Cliente, bool) {
	if !esObjeto(raw) {
		return entity.Cliente{}, false
	}
	var dto clienteDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		return entity.Cliente{}, false
	}
	return entity.Cliente{
		ID:        entity.ID(primero(dto.ID.String(), dto.AltID.String())),
		Nombre:    dto.Nombre,
		Correo:    primero(dto.Correo, dto.Email),
		Celular:   primero(dto.Celular, dto.Telefono),
		Cedula:    dto.Cedula,
		Direccion: dto.Direccion,
	}, true
}

// ClienteStore almacena la lista de clientes y habla con /api/clientes.
type ClienteStore struct {
	listado[entity.Cliente]
	api *api.Client
	log *logger.Logger
}

// NewClienteStore construye el store. La carga inicial corre sola la primera
// vez que el store se usa (Items o cualquier operación).
func NewClienteStore(client *api.Client, log *logger.Logger) *ClienteStore {
	if log == nil {
		log = logger.Nop()
	}
	return &ClienteStore{api: client, log: log}
}

// Items devuelve la lista, disparando la carga inicial si aún no ocurrió.
func (s *ClienteStore) Items(ctx context.Context) []entity.Cliente {
	s.init(ctx)
	return s.listado.Items()
}

func (s *ClienteStore) init(ctx context.Context) {
	s.inicio.Do(func() { s.fetchAll(ctx) })
}

// FetchAll recarga la colección completa. No devuelve error: los fallos de
// lectura se convierten en estado consultable vía Error().
func (s *ClienteStore) FetchAll(ctx context.Context) {
	s.inicio.Do(func() {})
	s.fetchAll(ctx)
}

func (s *ClienteStore) fetchAll(ctx context.Context) {
	s.empezarCarga()
	res, err := s.api.Get(ctx, "/api/clientes")
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
		s.terminarCarga(nil, api.MensajeError(res.Body, fmt.Sprintf("Error %d al cargar clientes", res.Status)))
		return
	}

	elems, err := decodeLista(res.Body)
	if err != nil {
		s.terminarCarga(nil, err.Error())
		return
	}
	items := make([]entity.Cliente, 0, len(elems))
	for _, raw := range elems {
		if c, ok := normalizeCliente(raw); ok {
			items = append(items, c)
		}
	}
	s.log.Debug().Int("total", len(items)).Msg("clientes cargados")
	s.terminarCarga(items, "")
}

// CreateOne crea el cliente y antepone el registro canónico que devuelve el
// servidor (orden más-reciente-primero).
func (s *ClienteStore) CreateOne(ctx context.Context, p ClientePayload) (entity.Cliente, error) {
	s.init(ctx)
	res, err := s.api.Post(ctx, "/api/clientes", p.canonico())
	if err != nil {
		return entity.Cliente{}, err
	}
	if res.Status == 403 {
		return entity.Cliente{}, domain.ErrNoAutorizado
	}
	if res.Status >= 400 {
		return entity.Cliente{}, errors.New(api.MensajeError(res.Body, "No se pudo crear el cliente"))
	}
	creado, ok := normalizeCliente(res.Body)
	if !ok {
		return entity.Cliente{}, domain.ErrRespuestaMalformada
	}
	s.anteponer(creado)
	return creado, nil
}

// UpdateOne actualiza el cliente y reemplaza in situ el item con ese id,
// conservando su posición en la lista.
func (s *ClienteStore) UpdateOne(ctx context.Context, id entity.ID, p ClientePayload) (entity.Cliente, error) {
	s.init(ctx)
	res, err := s.api.Put(ctx, "/api/clientes/"+id.String(), p.canonico())
	if err != nil {
		return entity.Cliente{}, err
	}
	if res.Status == 403 {
		return entity.Cliente{}, domain.ErrNoAutorizado
	}
	if res.Status >= 400 {
		return entity.Cliente{}, errors.New(api.MensajeError(res.Body, "No se pudo actualizar el cliente"))
	}
	actualizado, ok := normalizeCliente(res.Body)
	if !ok {
		return entity.Cliente{}, domain.ErrRespuestaMalformada
	}
	s.reemplazar(func(c entity.Cliente) bool { return c.ID == id }, actualizado)
	return actualizado, nil
}

// RemoveOne elimina el cliente. Un 404 cuenta como éxito (borrado
// idempotente: que ya no exista es un resultado aceptable) y el item sale de
// la lista solo cuando el servidor lo confirma.
func (s *ClienteStore) RemoveOne(ctx context.Context, id entity.ID) error {
	s.init(ctx)
	res, err := s.api.Delete(ctx, "/api/clientes/"+id.String())
	if err != nil {
		return err
	}
	if res.Status == 403 {
		return domain.ErrNoAutorizado
	}
	if res.Status >= 400 && res.Status != 404 {
		return errors.New(api.MensajeError(res.Body, "No se pudo eliminar el cliente"))
	}
	s.quitar(func(c entity.Cliente) bool { return c.ID == id })
	return nil
}
