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

type SegnalazioneService struct {
	repo     repositories.SegnalazioneRepository
	condRepo repositories.CondominioRepository
	ai       *AIService
}

func NewSegnalazioneService(
	repo repositories.SegnalazioneRepository,
	condRepo repositories.CondominioRepository,
	ai *AIService,
) *SegnalazioneService {
	return &SegnalazioneService{repo: repo, condRepo: condRepo, ai: ai}
}

func (s *SegnalazioneService) List(ctx context.Context) ([]models.Segnalazione, error) {
	return s.repo.List(ctx)
}

// Create opens a ticket: status starts at open, the creation timestamp
// is server-assigned, and any analysis is computed later on demand.
func (s *SegnalazioneService) Create(ctx context.Context, req dtos.CreateSegnalazioneRequest) (*models.Segnalazione, error) {
	cond, err := s.condRepo.GetByID(ctx, req.CondominioID)
	if err != nil {
		return nil, err
	}
	if cond == nil {
		return nil, utils.ValidationError(fmt.Sprintf("Condominio %d does not exist", req.CondominioID))
	}

	return s.repo.Create(ctx, &models.Segnalazione{
		CondominioID: req.CondominioID,
		Title:        req.Title,
		Description:  req.Description,
		Status:       models.TicketOpen,
		Priority:     models.TicketPriority(req.Priority),
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *SegnalazioneService) Update(ctx context.Context, id int, req dtos.UpdateSegnalazioneRequest) (*models.Segnalazione, error) {
	patch := repositories.SegnalazionePatch{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Status != nil {
		status := models.TicketStatus(*req.Status)
		patch.Status = &status
	}
	if req.Priority != nil {
		priority := models.TicketPriority(*req.Priority)
		patch.Priority = &priority
	}
	if len(patch.Fields()) == 0 {
		return nil, utils.ValidationError("No fields to update")
	}
	updated, err := s.repo.Update(ctx, id, patch)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, utils.NotFoundError("Segnalazione not found")
	}
	return updated, err
}

func (s *SegnalazioneService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

// Analyze recomputes the AI assessment for the ticket and persists it
// into ai_analysis, replacing any previous result.
func (s *SegnalazioneService) Analyze(ctx context.Context, id int) (*models.Segnalazione, error) {
	ticket, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, utils.NotFoundError("Segnalazione not found")
	}

	analysis, err := s.ai.AnalyzeTicket(ctx, ticket.Title, ticket.Description)
	if err != nil {
		return nil, utils.NewAppError(
			http.StatusBadGateway,
			utils.ErrCodeExternalService,
			"Ticket analysis failed",
			err,
		)
	}

	return s.repo.Update(ctx, id, repositories.SegnalazionePatch{AIAnalysis: &analysis})
}
