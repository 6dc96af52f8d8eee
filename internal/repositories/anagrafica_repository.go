package repositories

import (
	"context"
	"strings"

	"github.com/baleight/AmministrazioneCondomini/internal/models"
	"github.com/baleight/AmministrazioneCondomini/internal/storage"
)

/* ───────────── public interface ───────────── */

type AnagraficaRepository interface {
	List(ctx context.Context) ([]models.Anagrafica, error)
	GetByID(ctx context.Context, id int) (*models.Anagrafica, error)
	FindByEmail(ctx context.Context, email string) (*models.Anagrafica, error)
	Create(ctx context.Context, a *models.Anagrafica) (*models.Anagrafica, error)
	Update(ctx context.Context, id int, patch AnagraficaPatch) (*models.Anagrafica, error)
	Delete(ctx context.Context, id int) error
}

type AnagraficaPatch struct {
	Nome          *string
	Email         *string
	Telefono      *string
	CodiceFiscale *string
	Role          *models.PersonRole
}

func (p AnagraficaPatch) Fields() storage.Record {
	rec := storage.Record{}
	if p.Nome != nil {
		rec["nome"] = *p.Nome
	}
	if p.Email != nil {
		rec["email"] = *p.Email
	}
	if p.Telefono != nil {
		rec["telefono"] = *p.Telefono
	}
	if p.CodiceFiscale != nil {
		rec["codice_fiscale"] = *p.CodiceFiscale
	}
	if p.Role != nil {
		rec["role"] = string(*p.Role)
	}
	return rec
}

/* ───────────── implementation ───────────── */

type anagraficaRepo struct {
	baseRepo[models.Anagrafica]
}

func NewAnagraficaRepository(store storage.Store) AnagraficaRepository {
	return &anagraficaRepo{baseRepo[models.Anagrafica]{store: store, table: storage.TableAnagrafiche}}
}

// FindByEmail matches case-insensitively; email duplication is not
// policed by the store, so the first match wins.
func (r *anagraficaRepo) FindByEmail(ctx context.Context, email string) (*models.Anagrafica, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if strings.EqualFold(all[i].Email, email) {
			return &all[i], nil
		}
	}
	return nil, nil
}

func (r *anagraficaRepo) Update(ctx context.Context, id int, patch AnagraficaPatch) (*models.Anagrafica, error) {
	return r.patch(ctx, id, patch.Fields())
}
