package repositories

import (
	"context"

	"github.com/baleight/AmministrazioneCondomini/internal/models"
	"github.com/baleight/AmministrazioneCondomini/internal/storage"
)

/* ───────────── public interface ───────────── */

type CondominioRepository interface {
	List(ctx context.Context) ([]models.Condominio, error)
	GetByID(ctx context.Context, id int) (*models.Condominio, error)
	Create(ctx context.Context, c *models.Condominio) (*models.Condominio, error)
	Update(ctx context.Context, id int, patch CondominioPatch) (*models.Condominio, error)
	Delete(ctx context.Context, id int) error
}

// CondominioPatch is the explicit partial-update shape: only non-nil
// fields reach the store, and field names are fixed at compile time.
type CondominioPatch struct {
	Nome          *string
	Indirizzo     *string
	City          *string
	Email         *string
	CodiceFiscale *string
	UnitsCount    *int
}

func (p CondominioPatch) Fields() storage.Record {
	rec := storage.Record{}
	if p.Nome != nil {
		rec["nome"] = *p.Nome
	}
	if p.Indirizzo != nil {
		rec["indirizzo"] = *p.Indirizzo
	}
	if p.City != nil {
		rec["city"] = *p.City
	}
	if p.Email != nil {
		rec["email"] = *p.Email
	}
	if p.CodiceFiscale != nil {
		rec["codice_fiscale"] = *p.CodiceFiscale
	}
	if p.UnitsCount != nil {
		rec["units_count"] = *p.UnitsCount
	}
	return rec
}

/* ───────────── implementation ───────────── */

type condominioRepo struct {
	baseRepo[models.Condominio]
}

func NewCondominioRepository(store storage.Store) CondominioRepository {
	return &condominioRepo{baseRepo[models.Condominio]{store: store, table: storage.TableCondomini}}
}

func (r *condominioRepo) Update(ctx context.Context, id int, patch CondominioPatch) (*models.Condominio, error) {
	return r.patch(ctx, id, patch.Fields())
}
