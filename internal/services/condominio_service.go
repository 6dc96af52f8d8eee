package services

import (
	"context"
	"errors"

	"github.com/baleight/AmministrazioneCondomini/internal/dtos"
	"github.com/baleight/AmministrazioneCondomini/internal/models"
	"github.com/baleight/AmministrazioneCondomini/internal/repositories"
	"github.com/baleight/AmministrazioneCondomini/internal/storage"
	"github.com/baleight/AmministrazioneCondomini/internal/utils"
)

var condominioCSVColumns = []string{"id", "nome", "indirizzo", "city", "email", "codice_fiscale", "units_count"}
var condominioCSVRequired = []string{"nome", "indirizzo", "city", "codice_fiscale"}

type CondominioService struct {
	repo repositories.CondominioRepository
}

func NewCondominioService(repo repositories.CondominioRepository) *CondominioService {
	return &CondominioService{repo: repo}
}

func (s *CondominioService) List(ctx context.Context) ([]models.Condominio, error) {
	return s.repo.List(ctx)
}

func (s *CondominioService) Create(ctx context.Context, req dtos.CreateCondominioRequest) (*models.Condominio, error) {
	return s.repo.Create(ctx, &models.Condominio{
		Nome:          req.Nome,
		Indirizzo:     req.Indirizzo,
		City:          req.City,
		Email:         req.Email,
		CodiceFiscale: req.CodiceFiscale,
		UnitsCount:    req.UnitsCount,
	})
}

func (s *CondominioService) Update(ctx context.Context, id int, req dtos.UpdateCondominioRequest) (*models.Condominio, error) {
	patch := repositories.CondominioPatch{
		Nome:          req.Nome,
		Indirizzo:     req.Indirizzo,
		City:          req.City,
		Email:         req.Email,
		CodiceFiscale: req.CodiceFiscale,
		UnitsCount:    req.UnitsCount,
	}
	if len(patch.Fields()) == 0 {
		return nil, utils.ValidationError("No fields to update")
	}
	updated, err := s.repo.Update(ctx, id, patch)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, utils.NotFoundError("Condominio not found")
	}
	return updated, err
}

// Delete removes the building only. Units, tickets and events keep
// their dangling references; orphan-and-ignore is the documented
// policy.
func (s *CondominioService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func (s *CondominioService) ExportCSV(ctx context.Context) (string, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return "", err
	}
	rows, err := structsToRecords(all)
	if err != nil {
		return "", err
	}
	return RecordsToCSV(condominioCSVColumns, rows), nil
}

// ImportCSV creates one Condominio per well-formed row. Ids in the
// file are discarded so every row becomes a new record.
func (s *CondominioService) ImportCSV(ctx context.Context, text string) (dtos.ImportResult, error) {
	rows, err := CSVToRecords(text)
	if err != nil {
		return dtos.ImportResult{}, utils.ValidationError("CSV payload could not be parsed")
	}

	var res dtos.ImportResult
	for _, rec := range rows {
		if !hasRequiredFields(rec, condominioCSVRequired) {
			res.Skipped++
			continue
		}
		c, err := recordToStruct[models.Condominio](rec)
		if err != nil {
			res.Skipped++
			continue
		}
		if _, err := s.repo.Create(ctx, &c); err != nil {
			return res, err
		}
		res.Imported++
	}
	return res, nil
}
