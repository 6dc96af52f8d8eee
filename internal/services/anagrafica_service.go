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

var anagraficaCSVColumns = []string{"id", "nome", "email", "telefono", "codice_fiscale", "role"}
var anagraficaCSVRequired = []string{"nome", "email", "codice_fiscale", "role"}

type AnagraficaService struct {
	repo repositories.AnagraficaRepository
}

func NewAnagraficaService(repo repositories.AnagraficaRepository) *AnagraficaService {
	return &AnagraficaService{repo: repo}
}

func (s *AnagraficaService) List(ctx context.Context) ([]models.Anagrafica, error) {
	return s.repo.List(ctx)
}

func (s *AnagraficaService) Create(ctx context.Context, req dtos.CreateAnagraficaRequest) (*models.Anagrafica, error) {
	return s.repo.Create(ctx, &models.Anagrafica{
		Nome:          req.Nome,
		Email:         req.Email,
		Telefono:      req.Telefono,
		CodiceFiscale: req.CodiceFiscale,
		Role:          models.PersonRole(req.Role),
	})
}

func (s *AnagraficaService) Update(ctx context.Context, id int, req dtos.UpdateAnagraficaRequest) (*models.Anagrafica, error) {
	patch := repositories.AnagraficaPatch{
		Nome:          req.Nome,
		Email:         req.Email,
		Telefono:      req.Telefono,
		CodiceFiscale: req.CodiceFiscale,
	}
	if req.Role != nil {
		role := models.PersonRole(*req.Role)
		patch.Role = &role
	}
	// The codice fiscale doubles as the login secret; blanking it would
	// lock the person out.
	if req.CodiceFiscale != nil && *req.CodiceFiscale == "" {
		return nil, utils.ValidationError("Codice fiscale cannot be emptied")
	}
	if len(patch.Fields()) == 0 {
		return nil, utils.ValidationError("No fields to update")
	}
	updated, err := s.repo.Update(ctx, id, patch)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, utils.NotFoundError("Anagrafica not found")
	}
	return updated, err
}

func (s *AnagraficaService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func (s *AnagraficaService) ExportCSV(ctx context.Context) (string, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return "", err
	}
	rows, err := structsToRecords(all)
	if err != nil {
		return "", err
	}
	return RecordsToCSV(anagraficaCSVColumns, rows), nil
}

func (s *AnagraficaService) ImportCSV(ctx context.Context, text string) (dtos.ImportResult, error) {
	rows, err := CSVToRecords(text)
	if err != nil {
		return dtos.ImportResult{}, utils.ValidationError("CSV payload could not be parsed")
	}

	var res dtos.ImportResult
	for _, rec := range rows {
		if !hasRequiredFields(rec, anagraficaCSVRequired) {
			res.Skipped++
			continue
		}
		a, err := recordToStruct[models.Anagrafica](rec)
		if err != nil || !a.Role.Valid() {
			res.Skipped++
			continue
		}
		if _, err := s.repo.Create(ctx, &a); err != nil {
			return res, err
		}
		res.Imported++
	}
	return res, nil
}
