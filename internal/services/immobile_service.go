package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/baleight/AmministrazioneCondomini/internal/dtos"
	"github.com/baleight/AmministrazioneCondomini/internal/models"
	"github.com/baleight/AmministrazioneCondomini/internal/repositories"
	"github.com/baleight/AmministrazioneCondomini/internal/storage"
	"github.com/baleight/AmministrazioneCondomini/internal/utils"
)

type ImmobileService struct {
	repo     repositories.ImmobileRepository
	condRepo repositories.CondominioRepository
	anagRepo repositories.AnagraficaRepository
}

func NewImmobileService(
	repo repositories.ImmobileRepository,
	condRepo repositories.CondominioRepository,
	anagRepo repositories.AnagraficaRepository,
) *ImmobileService {
	return &ImmobileService{repo: repo, condRepo: condRepo, anagRepo: anagRepo}
}

func (s *ImmobileService) List(ctx context.Context) ([]models.Immobile, error) {
	return s.repo.List(ctx)
}

// ListByCondominio narrows the listing to one building's units.
// Unknown buildings yield an empty list, in line with the
// orphan-and-ignore delete policy.
func (s *ImmobileService) ListByCondominio(ctx context.Context, condominioID int) ([]models.Immobile, error) {
	return s.repo.ListByCondominio(ctx, condominioID)
}

func (s *ImmobileService) Create(ctx context.Context, req dtos.CreateImmobileRequest) (*models.Immobile, error) {
	if req.Superficie <= 0 {
		return nil, utils.ValidationError("Superficie must be greater than zero")
	}
	if err := s.checkCondominio(ctx, req.CondominioID); err != nil {
		return nil, err
	}
	if err := s.checkPerson(ctx, req.OwnerID, "Owner"); err != nil {
		return nil, err
	}
	if err := s.checkPerson(ctx, req.TenantID, "Tenant"); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, &models.Immobile{
		CondominioID: req.CondominioID,
		Nome:         req.Nome,
		Piano:        req.Piano,
		Superficie:   req.Superficie,
		OwnerID:      req.OwnerID,
		TenantID:     req.TenantID,
	})
}

func (s *ImmobileService) Update(ctx context.Context, id int, req dtos.UpdateImmobileRequest) (*models.Immobile, error) {
	if req.Superficie != nil && *req.Superficie <= 0 {
		return nil, utils.ValidationError("Superficie must be greater than zero")
	}
	if req.CondominioID != nil {
		if err := s.checkCondominio(ctx, *req.CondominioID); err != nil {
			return nil, err
		}
	}
	if err := s.checkPerson(ctx, req.OwnerID, "Owner"); err != nil {
		return nil, err
	}
	if err := s.checkPerson(ctx, req.TenantID, "Tenant"); err != nil {
		return nil, err
	}

	patch := repositories.ImmobilePatch{
		CondominioID: req.CondominioID,
		Nome:         req.Nome,
		Piano:        req.Piano,
		Superficie:   req.Superficie,
		OwnerID:      req.OwnerID,
		TenantID:     req.TenantID,
		ClearOwner:   req.ClearOwner,
		ClearTenant:  req.ClearTenant,
	}
	if len(patch.Fields()) == 0 {
		return nil, utils.ValidationError("No fields to update")
	}
	updated, err := s.repo.Update(ctx, id, patch)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, utils.NotFoundError("Immobile not found")
	}
	return updated, err
}

func (s *ImmobileService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func (s *ImmobileService) checkCondominio(ctx context.Context, id int) error {
	cond, err := s.condRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if cond == nil {
		return utils.ValidationError(fmt.Sprintf("Condominio %d does not exist", id))
	}
	return nil
}

func (s *ImmobileService) checkPerson(ctx context.Context, id *int, label string) error {
	if id == nil {
		return nil
	}
	person, err := s.anagRepo.GetByID(ctx, *id)
	if err != nil {
		return err
	}
	if person == nil {
		return utils.ValidationError(fmt.Sprintf("%s %d does not exist in anagrafiche", label, *id))
	}
	return nil
}
