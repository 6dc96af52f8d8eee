package repositories

import (
	"context"

	"github.com/baleight/AmministrazioneCondomini/internal/models"
	"github.com/baleight/AmministrazioneCondomini/internal/storage"
)

/* ───────────── public interface ───────────── */

type ImmobileRepository interface {
	List(ctx context.Context) ([]models.Immobile, error)
	ListByCondominio(ctx context.Context, condominioID int) ([]models.Immobile, error)
	GetByID(ctx context.Context, id int) (*models.Immobile, error)
	Create(ctx context.Context, i *models.Immobile) (*models.Immobile, error)
	Update(ctx context.Context, id int, patch ImmobilePatch) (*models.Immobile, error)
	Delete(ctx context.Context, id int) error
}

type ImmobilePatch struct {
	CondominioID *int
	Nome         *string
	Piano        *string
	Superficie   *float64
	OwnerID      *int
	TenantID     *int

	// Clearing an optional reference is distinct from leaving it alone.
	ClearOwner  bool
	ClearTenant bool
}

func (p ImmobilePatch) Fields() storage.Record {
	rec := storage.Record{}
	if p.CondominioID != nil {
		rec["condominio_id"] = *p.CondominioID
	}
	if p.Nome != nil {
		rec["nome"] = *p.Nome
	}
	if p.Piano != nil {
		rec["piano"] = *p.Piano
	}
	if p.Superficie != nil {
		rec["superficie"] = *p.Superficie
	}
	if p.OwnerID != nil {
		rec["owner_id"] = *p.OwnerID
	} else if p.ClearOwner {
		rec["owner_id"] = nil
	}
	if p.TenantID != nil {
		rec["tenant_id"] = *p.TenantID
	} else if p.ClearTenant {
		rec["tenant_id"] = nil
	}
	return rec
}

/* ───────────── implementation ───────────── */

type immobileRepo struct {
	baseRepo[models.Immobile]
}

func NewImmobileRepository(store storage.Store) ImmobileRepository {
	return &immobileRepo{baseRepo[models.Immobile]{store: store, table: storage.TableImmobili}}
}

func (r *immobileRepo) ListByCondominio(ctx context.Context, condominioID int) ([]models.Immobile, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Immobile, 0, len(all))
	for _, im := range all {
		if im.CondominioID == condominioID {
			out = append(out, im)
		}
	}
	return out, nil
}

func (r *immobileRepo) Update(ctx context.Context, id int, patch ImmobilePatch) (*models.Immobile, error) {
	return r.patch(ctx, id, patch.Fields())
}
