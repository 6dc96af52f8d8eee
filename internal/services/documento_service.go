package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/baleight/AmministrazioneCondomini/internal/dtos"
	"github.com/baleight/AmministrazioneCondomini/internal/models"
	"github.com/baleight/AmministrazioneCondomini/internal/repositories"
	"github.com/baleight/AmministrazioneCondomini/internal/storage"
	"github.com/baleight/AmministrazioneCondomini/internal/utils"
)

// The payload lives inline in the record, so uploads are capped hard.
const MaxDocumentBytes = 500 * 1024

type DocumentoService struct {
	repo repositories.DocumentoRepository
}

func NewDocumentoService(repo repositories.DocumentoRepository) *DocumentoService {
	return &DocumentoService{repo: repo}
}

func (s *DocumentoService) List(ctx context.Context) ([]models.Documento, error) {
	return s.repo.List(ctx)
}

// Upload accepts the payload as base64 text and rejects anything whose
// decoded size exceeds the cap.
func (s *DocumentoService) Upload(ctx context.Context, req dtos.UploadDocumentoRequest) (*models.Documento, error) {
	payload, err := base64.StdEncoding.DecodeString(req.Content)
	if err != nil {
		return nil, utils.ValidationError("Document content is not valid base64")
	}
	if len(payload) == 0 {
		return nil, utils.ValidationError("Document content is empty")
	}
	if len(payload) > MaxDocumentBytes {
		return nil, utils.NewAppError(
			http.StatusRequestEntityTooLarge,
			utils.ErrCodePayloadTooLarge,
			fmt.Sprintf("Document exceeds the %dKB limit", MaxDocumentBytes/1024),
			utils.ErrValidation,
		)
	}

	return s.repo.Create(ctx, &models.Documento{
		Nome:       req.Nome,
		Category:   models.DocCategory(req.Category),
		FileName:   req.FileName,
		Content:    req.Content,
		SizeBytes:  len(payload),
		UploadedAt: time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *DocumentoService) Update(ctx context.Context, id int, req dtos.UpdateDocumentoRequest) (*models.Documento, error) {
	patch := repositories.DocumentoPatch{
		Nome: req.Nome,
	}
	if req.Category != nil {
		cat := models.DocCategory(*req.Category)
		patch.Category = &cat
	}
	if len(patch.Fields()) == 0 {
		return nil, utils.ValidationError("No fields to update")
	}
	updated, err := s.repo.Update(ctx, id, patch)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, utils.NotFoundError("Documento not found")
	}
	return updated, err
}

func (s *DocumentoService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
