package repositories

import (
	"context"

	"github.com/baleight/AmministrazioneCondomini/internal/models"
	"github.com/baleight/AmministrazioneCondomini/internal/storage"
)

/* ───────────── public interface ───────────── */

type EventoRepository interface {
	List(ctx context.Context) ([]models.Evento, error)
	GetByID(ctx context.Context, id int) (*models.Evento, error)
	Create(ctx context.Context, e *models.Evento) (*models.Evento, error)
	Update(ctx context.Context, id int, patch EventoPatch) (*models.Evento, error)
	Delete(ctx context.Context, id int) error
}

type EventoPatch struct {
	Title        *string
	Description  *string
	StartsAt     *string
	EndsAt       *string
	Category     *models.EventCategory
	CondominioID *int

	// A nil condominio reference means the event applies to all
	// buildings; clearing it is distinct from not touching it.
	ClearCondominio bool
}

func (p EventoPatch) Fields() storage.Record {
	rec := storage.Record{}
	if p.Title != nil {
		rec["title"] = *p.Title
	}
	if p.Description != nil {
		rec["description"] = *p.Description
	}
	if p.StartsAt != nil {
		rec["starts_at"] = *p.StartsAt
	}
	if p.EndsAt != nil {
		rec["ends_at"] = *p.EndsAt
	}
	if p.Category != nil {
		rec["category"] = string(*p.Category)
	}
	if p.CondominioID != nil {
		rec["condominio_id"] = *p.CondominioID
	} else if p.ClearCondominio {
		rec["condominio_id"] = nil
	}
	return rec
}

/* ───────────── implementation ───────────── */

type eventoRepo struct {
	baseRepo[models.Evento]
}

func NewEventoRepository(store storage.Store) EventoRepository {
	return &eventoRepo{baseRepo[models.Evento]{store: store, table: storage.TableEventi}}
}

func (r *eventoRepo) Update(ctx context.Context, id int, patch EventoPatch) (*models.Evento, error) {
	return r.patch(ctx, id, patch.Fields())
}
