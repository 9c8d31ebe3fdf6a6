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

// CategoriaPayload datos del formulario de categoría.
type CategoriaPayload struct {
	Nombre        string
	Descripcion   string
	FechaCreacion string // YYYY-MM-DD
}

type categoriaBody struct {
	Nombre        string `json:"nombre"`
	Descripcion   string `json:"descripcion"`
	FechaCreacion string `json:"fechaCreacion"`
}

func (p CategoriaPayload) canonico() categoriaBody {
	return categoriaBody{
		Nombre:        p.Nombre,
		Descripcion:   p.Descripcion,
		FechaCreacion: p.FechaCreacion,
	}
}

type categoriaDTO struct {
	ID            entity.ID `json:"id"`
	AltID         entity.ID `json:"_id"`
	Nombre        string    `json:"nombre"`
	Descripcion   string    `json:"descripcion"`
	FechaCreacion string    `json:"fechaCreacion"`
}

// normalizeCategoria mapea el registro crudo a entity.Categoria. El backend
// puede mandar fechaCreacion como timestamp completo; se trunca a la fecha
// (los primeros 10 bytes, YYYY-MM-DD).
func normalizeCategoria(raw []byte) (entity.Categoria, bool) {
	if !esObjeto(raw) {
		return entity.Categoria{}, false
	}
	var dto categoriaDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		return entity.Categoria{}, false
	}
	fecha := dto.FechaCreacion
	if len(fecha) > 10 {
		fecha = fecha[:10]
	}
	return entity.Categoria{
		ID:            entity.ID(primero(dto.ID.String(), dto.AltID.String())),
		Nombre:        dto.Nombre,
		Descripcion:   dto.Descripcion,
		FechaCreacion: fecha,
	}, true
}

// CategoriaStore almacena la lista de categorías y habla con /api/categorias.
// El backend no expone PUT para categorías, así que no hay UpdateOne.
type CategoriaStore struct {
	listado[entity.Categoria]
	api *api.Client
	log *logger.Logger
}

// NewCategoriaStore construye el store; la carga inicial corre en el primer uso.
func NewCategoriaStore(client *api.Client, log *logger.Logger) *CategoriaStore {
	if log == nil {
		log = logger.Nop()
	}
	return &CategoriaStore{api: client, log: log}
}

// Items devuelve la lista, disparando la carga inicial si aún no ocurrió.
func (s *CategoriaStore) Items(ctx context.Context) []entity.Categoria {
	s.init(ctx)
	return s.listado.Items()
}

func (s *CategoriaStore) init(ctx context.Context) {
	s.inicio.Do(func() { s.fetchAll(ctx) })
}

// FetchAll recarga la colección completa; los fallos quedan en Error().
func (s *CategoriaStore) FetchAll(ctx context.Context) {
	s.inicio.Do(func() {})
	s.fetchAll(ctx)
}

func (s *CategoriaStore) fetchAll(ctx context.Context) {
	s.empezarCarga()
	res, err := s.api.Get(ctx, "/api/categorias")
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
		s.terminarCarga(nil, api.MensajeError(res.Body, fmt.Sprintf("Error %d al cargar categorías", res.Status)))
		return
	}

	elems, err := decodeLista(res.Body)
	if err != nil {
		s.terminarCarga(nil, err.Error())
		return
	}
	items := make([]entity.Categoria, 0, len(elems))
	for _, raw := range elems {
		if c, ok := normalizeCategoria(raw); ok {
			items = append(items, c)
		}
	}
	s.log.Debug().Int("total", len(items)).Msg("categorías cargadas")
	s.terminarCarga(items, "")
}

// CreateOne crea la categoría y antepone el registro canónico del servidor.
func (s *CategoriaStore) CreateOne(ctx context.Context, p CategoriaPayload) (entity.Categoria, error) {
	s.init(ctx)
	res, err := s.api.Post(ctx, "/api/categorias", p.canonico())
	if err != nil {
		return entity.Categoria{}, err
	}
	if res.Status == 403 {
		return entity.Categoria{}, domain.ErrNoAutorizado
	}
	if res.Status >= 400 {
		return entity.Categoria{}, errors.New(api.MensajeError(res.Body, "No se pudo crear la categoría"))
	}
	creada, ok := normalizeCategoria(res.Body)
	if !ok {
		return entity.Categoria{}, domain.ErrRespuestaMalformada
	}
	s.anteponer(creada)
	return creada, nil
}

// RemoveOne elimina la categoría; 404 cuenta como éxito.
func (s *CategoriaStore) RemoveOne(ctx context.Context, id entity.ID) error {
	s.init(ctx)
	res, err := s.api.Delete(ctx, "/api/categorias/"+id.String())
	if err != nil {
		return err
	}
	if res.Status == 403 {
		return domain.ErrNoAutorizado
	}
	if res.Status >= 400 && res.Status != 404 {
		return errors.New(api.MensajeError(res.Body, "No se pudo eliminar la categoría"))
	}
	s.quitar(func(c entity.Categoria) bool { return c.ID == id })
	return nil
}
