package repositories

import (
	"context"

	"github.com/baleight/AmministrazioneCondomini/internal/models"
	"github.com/baleight/AmministrazioneCondomini/internal/storage"
)

/* ───────────── public interface ───────────── */

type SegnalazioneRepository interface {
	List(ctx context.Context) ([]models.Segnalazione, error)
	GetByID(ctx context.Context, id int) (*models.Segnalazione, error)
	Create(ctx context.Context, s *models.Segnalazione) (*models.Segnalazione, error)
	Update(ctx context.Context, id int, patch SegnalazionePatch) (*models.Segnalazione, error)
	Delete(ctx context.Context, id int) error
}

type SegnalazionePatch struct {
	Title       *string
	Description *string
	Status      *models.TicketStatus
	Priority    *models.TicketPriority
	AIAnalysis  *string
}

func (p SegnalazionePatch) Fields() storage.Record {
	rec := storage.Record{}
	if p.Title != nil {
		rec["title"] = *p.Title
	}
	if p.Description != nil {
		rec["description"] = *p.Description
	}
	if p.Status != nil {
		rec["status"] = string(*p.Status)
	}
	if p.Priority != nil {
		rec["priority"] = string(*p.Priority)
	}
	if p.AIAnalysis != nil {
		rec["ai_analysis"] = *p.AIAnalysis
	}
	return rec
}

/* ───────────── implementation ───────────── */

type segnalazioneRepo struct {
	baseRepo[models.Segnalazione]
}

func NewSegnalazioneRepository(store storage.Store) SegnalazioneRepository {
	return &segnalazioneRepo{baseRepo[models.Segnalazione]{store: store, table: storage.TableSegnalazioni}}
}

func (r *segnalazioneRepo) Update(ctx context.Context, id int, patch SegnalazionePatch) (*models.Segnalazione, error) {
	return r.patch(ctx, id, patch.Fields())
}
