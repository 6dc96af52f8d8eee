package services

import (
	"context"
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

type ComunicazioneService struct {
	repo     repositories.ComunicazioneRepository
	condRepo repositories.CondominioRepository
	anagRepo repositories.AnagraficaRepository
	ai       *AIService
	mailer   *Mailer
}

func NewComunicazioneService(
	repo repositories.ComunicazioneRepository,
	condRepo repositories.CondominioRepository,
	anagRepo repositories.AnagraficaRepository,
	ai *AIService,
	mailer *Mailer,
) *ComunicazioneService {
	return &ComunicazioneService{repo: repo, condRepo: condRepo, anagRepo: anagRepo, ai: ai, mailer: mailer}
}

func (s *ComunicazioneService) List(ctx context.Context) ([]models.Comunicazione, error) {
	return s.repo.List(ctx)
}

func (s *ComunicazioneService) Create(ctx context.Context, req dtos.CreateComunicazioneRequest) (*models.Comunicazione, error) {
	cond, err := s.condRepo.GetByID(ctx, req.CondominioID)
	if err != nil {
		return nil, err
	}
	if cond == nil {
		return nil, utils.ValidationError(fmt.Sprintf("Condominio %d does not exist", req.CondominioID))
	}

	return s.repo.Create(ctx, &models.Comunicazione{
		CondominioID: req.CondominioID,
		Title:        req.Title,
		Content:      req.Content,
	})
}

func (s *ComunicazioneService) Update(ctx context.Context, id int, req dtos.UpdateComunicazioneRequest) (*models.Comunicazione, error) {
	if req.CondominioID != nil {
		cond, err := s.condRepo.GetByID(ctx, *req.CondominioID)
		if err != nil {
			return nil, err
		}
		if cond == nil {
			return nil, utils.ValidationError(fmt.Sprintf("Condominio %d does not exist", *req.CondominioID))
		}
	}

	patch := repositories.ComunicazionePatch{
		CondominioID: req.CondominioID,
		Title:        req.Title,
		Content:      req.Content,
	}
	if len(patch.Fields()) == 0 {
		return nil, utils.ValidationError("No fields to update")
	}
	updated, err := s.repo.Update(ctx, id, patch)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, utils.NotFoundError("Comunicazione not found")
	}
	return updated, err
}

func (s *ComunicazioneService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

// Draft asks the AI service for a ready-to-send announcement on the
// given topic and tone. Nothing is persisted; the caller reviews the
// draft and creates the record explicitly.
func (s *ComunicazioneService) Draft(ctx context.Context, req dtos.DraftComunicazioneRequest) (*dtos.DraftComunicazioneResponse, error) {
	title, content, err := s.ai.DraftComunicazione(ctx, req.Topic, req.Tone)
	if err != nil {
		return nil, utils.NewAppError(
			http.StatusBadGateway,
			utils.ErrCodeExternalService,
			"Draft generation failed",
			err,
		)
	}
	return &dtos.DraftComunicazioneResponse{Title: title, Content: content}, nil
}

// Send emails the announcement to every person in the anagrafiche with
// a non-empty address and stamps sent_at. Per-recipient failures are
// logged and counted, not fatal.
func (s *ComunicazioneService) Send(ctx context.Context, id int) (*dtos.SendComunicazioneResponse, error) {
	if !s.mailer.Enabled() {
		return nil, utils.NewAppError(
			http.StatusServiceUnavailable,
			utils.ErrCodeExternalService,
			"Email delivery is not configured",
			utils.ErrExternalServiceFailure,
		)
	}

	com, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if com == nil {
		return nil, utils.NotFoundError("Comunicazione not found")
	}

	people, err := s.anagRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dtos.SendComunicazioneResponse{}
	for _, p := range people {
		if p.Email == "" {
			continue
		}
		if err := s.mailer.Send(ctx, p.Nome, p.Email, com.Title, com.Content, ""); err != nil {
			utils.Logger.WithError(err).Warnf("Failed to deliver comunicazione %d to %s", id, p.Email)
			resp.Failed++
			continue
		}
		resp.Sent++
	}

	sentAt := time.Now().UTC().Format(time.RFC3339)
	if _, err := s.repo.Update(ctx, id, repositories.ComunicazionePatch{SentAt: &sentAt}); err != nil {
		return nil, err
	}
	resp.SentAt = sentAt
	return resp, nil
}
