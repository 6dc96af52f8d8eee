package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/baleight/AmministrazioneCondomini/internal/dtos"
	"github.com/baleight/AmministrazioneCondomini/internal/models"
	"github.com/baleight/AmministrazioneCondomini/internal/repositories"
	"github.com/baleight/AmministrazioneCondomini/internal/storage"
	"github.com/baleight/AmministrazioneCondomini/internal/utils"
)

type EventoService struct {
	repo     repositories.EventoRepository
	condRepo repositories.CondominioRepository
}

func NewEventoService(repo repositories.EventoRepository, condRepo repositories.CondominioRepository) *EventoService {
	return &EventoService{repo: repo, condRepo: condRepo}
}

func (s *EventoService) List(ctx context.Context) ([]models.Evento, error) {
	return s.repo.List(ctx)
}

func (s *EventoService) Create(ctx context.Context, req dtos.CreateEventoRequest) (*models.Evento, error) {
	start, err := parseEventTime(req.StartsAt, "starts_at")
	if err != nil {
		return nil, err
	}
	if req.EndsAt != "" {
		end, err := parseEventTime(req.EndsAt, "ends_at")
		if err != nil {
			return nil, err
		}
		if !end.After(start) {
			return nil, utils.ValidationError("ends_at must be after starts_at")
		}
	}
	if req.CondominioID != nil {
		if err := s.checkCondominio(ctx, *req.CondominioID); err != nil {
			return nil, err
		}
	}

	return s.repo.Create(ctx, &models.Evento{
		Title:        req.Title,
		Description:  req.Description,
		StartsAt:     req.StartsAt,
		EndsAt:       req.EndsAt,
		Category:     models.EventCategory(req.Category),
		CondominioID: req.CondominioID,
	})
}

func (s *EventoService) Update(ctx context.Context, id int, req dtos.UpdateEventoRequest) (*models.Evento, error) {
	if req.CondominioID != nil {
		if err := s.checkCondominio(ctx, *req.CondominioID); err != nil {
			return nil, err
		}
	}

	// Time-window consistency needs the stored record when only one
	// bound changes.
	if req.StartsAt != nil || req.EndsAt != nil {
		current, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if current == nil {
			return nil, utils.NotFoundError("Evento not found")
		}
		startStr := current.StartsAt
		if req.StartsAt != nil {
			startStr = *req.StartsAt
		}
		endStr := current.EndsAt
		if req.EndsAt != nil {
			endStr = *req.EndsAt
		}
		start, err := parseEventTime(startStr, "starts_at")
		if err != nil {
			return nil, err
		}
		if endStr != "" {
			end, err := parseEventTime(endStr, "ends_at")
			if err != nil {
				return nil, err
			}
			if !end.After(start) {
				return nil, utils.ValidationError("ends_at must be after starts_at")
			}
		}
	}

	patch := repositories.EventoPatch{
		Title:           req.Title,
		Description:     req.Description,
		StartsAt:        req.StartsAt,
		EndsAt:          req.EndsAt,
		CondominioID:    req.CondominioID,
		ClearCondominio: req.ClearCondominio,
	}
	if req.Category != nil {
		cat := models.EventCategory(*req.Category)
		patch.Category = &cat
	}
	if len(patch.Fields()) == 0 {
		return nil, utils.ValidationError("No fields to update")
	}
	updated, err := s.repo.Update(ctx, id, patch)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, utils.NotFoundError("Evento not found")
	}
	return updated, err
}

func (s *EventoService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func (s *EventoService) checkCondominio(ctx context.Context, id int) error {
	cond, err := s.condRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if cond == nil {
		return utils.ValidationError(fmt.Sprintf("Condominio %d does not exist", id))
	}
	return nil
}

func parseEventTime(value, field string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, utils.ValidationError(fmt.Sprintf("%s must be an RFC 3339 timestamp", field))
	}
	return t, nil
}
