package repositories

import (
	"context"

	"github.com/baleight/AmministrazioneCondomini/internal/models"
	"github.com/baleight/AmministrazioneCondomini/internal/storage"
)

/* ───────────── public interface ───────────── */

type DocumentoRepository interface {
	List(ctx context.Context) ([]models.Documento, error)
	GetByID(ctx context.Context, id int) (*models.Documento, error)
	Create(ctx context.Context, d *models.Documento) (*models.Documento, error)
	Update(ctx context.Context, id int, patch DocumentoPatch) (*models.Documento, error)
	Delete(ctx context.Context, id int) error
}

// DocumentoPatch covers metadata only; the payload is immutable after
// upload (replace means delete + re-upload).
type DocumentoPatch struct {
	Nome     *string
	Category *models.DocCategory
}

func (p DocumentoPatch) Fields() storage.Record {
	rec := storage.Record{}
	if p.Nome != nil {
		rec["nome"] = *p.Nome
	}
	if p.Category != nil {
		rec["category"] = string(*p.Category)
	}
	return rec
}

/* ───────────── implementation ───────────── */

type documentoRepo struct {
	baseRepo[models.Documento]
}

func NewDocumentoRepository(store storage.Store) DocumentoRepository {
	return &documentoRepo{baseRepo[models.Documento]{store: store, table: storage.TableDocumenti}}
}

func (r *documentoRepo) Update(ctx context.Context, id int, patch DocumentoPatch) (*models.Documento, error) {
	return r.patch(ctx, id, patch.Fields())
}
