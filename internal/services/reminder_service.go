package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/baleight/AmministrazioneCondomini/internal/models"
	"github.com/baleight/AmministrazioneCondomini/internal/repositories"
	"github.com/baleight/AmministrazioneCondomini/internal/utils"
)

// ReminderService mails the administrator a digest of calendar entries
// starting within the next 24 hours. It runs on the daily cron.
type ReminderService struct {
	eventiRepo repositories.EventoRepository
	condRepo   repositories.CondominioRepository
	mailer     *Mailer
	adminName  string
	adminEmail string
}

func NewReminderService(
	eventiRepo repositories.EventoRepository,
	condRepo repositories.CondominioRepository,
	mailer *Mailer,
	adminName, adminEmail string,
) *ReminderService {
	return &ReminderService{
		eventiRepo: eventiRepo,
		condRepo:   condRepo,
		mailer:     mailer,
		adminName:  adminName,
		adminEmail: adminEmail,
	}
}

func (s *ReminderService) RunDailyDigest(ctx context.Context) error {
	if !s.mailer.Enabled() {
		return nil
	}

	events, err := s.eventiRepo.List(ctx)
	if err != nil {
		return err
	}

	now := time.Now()
	cutoff := now.Add(24 * time.Hour)

	var upcoming []models.Evento
	for _, e := range events {
		start, err := time.Parse(time.RFC3339, e.StartsAt)
		if err != nil {
			utils.Logger.Warnf("Evento %d has an unparsable starts_at %q, skipping", e.ID, e.StartsAt)
			continue
		}
		if start.After(now) && start.Before(cutoff) {
			upcoming = append(upcoming, e)
		}
	}
	if len(upcoming) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString("Eventi in programma nelle prossime 24 ore:\n")
	for _, e := range upcoming {
		start, _ := time.Parse(time.RFC3339, e.StartsAt)
		scope := "tutti i condomini"
		if e.CondominioID != nil {
			scope = fmt.Sprintf("condominio %d", *e.CondominioID)
			if cond, err := s.condRepo.GetByID(ctx, *e.CondominioID); err == nil && cond != nil {
				scope = cond.Nome
			}
		}
		fmt.Fprintf(&b, "\n- %s  %s (%s), %s", start.Format("02/01 15:04"), e.Title, e.Category, scope)
	}

	subject := fmt.Sprintf("Agenda: %d eventi nelle prossime 24 ore", len(upcoming))
	return s.mailer.Send(ctx, s.adminName, s.adminEmail, subject, b.String(), "")
}
