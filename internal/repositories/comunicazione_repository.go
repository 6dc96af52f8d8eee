package repositories

import (
	"context"

	"github.com/baleight/AmministrazioneCondomini/internal/models"
	"github.com/baleight/AmministrazioneCondomini/internal/storage"
)

/* ───────────── public interface ───────────── */

type ComunicazioneRepository interface {
	List(ctx context.Context) ([]models.Comunicazione, error)
	GetByID(ctx context.Context, id int) (*models.Comunicazione, error)
	Create(ctx context.Context, c *models.Comunicazione) (*models.Comunicazione, error)
	Update(ctx context.Context, id int, patch ComunicazionePatch) (*models.Comunicazione, error)
	Delete(ctx context.Context, id int) error
}

type ComunicazionePatch struct {
	CondominioID *int
	Title        *string
	Content      *string
	SentAt       *string
}

func (p ComunicazionePatch) Fields() storage.Record {
	rec := storage.Record{}
	if p.CondominioID != nil {
		rec["condominio_id"] = *p.CondominioID
	}
	if p.Title != nil {
		rec["title"] = *p.Title
	}
	if p.Content != nil {
		rec["content"] = *p.Content
	}
	if p.SentAt != nil {
		rec["sent_at"] = *p.SentAt
	}
	return rec
}

/* ───────────── implementation ───────────── */

type comunicazioneRepo struct {
	baseRepo[models.Comunicazione]
}

func NewComunicazioneRepository(store storage.Store) ComunicazioneRepository {
	return &comunicazioneRepo{baseRepo[models.Comunicazione]{store: store, table: storage.TableComunicazioni}}
}

func (r *comunicazioneRepo) Update(ctx context.Context, id int, patch ComunicazionePatch) (*models.Comunicazione, error) {
	return r.patch(ctx, id, patch.Fields())
}
