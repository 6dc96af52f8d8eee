package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/baleight/AmministrazioneCondomini/internal/dtos"
	"github.com/baleight/AmministrazioneCondomini/internal/repositories"
	"github.com/baleight/AmministrazioneCondomini/internal/storage"
)

func newReminderFixture(t *testing.T, mailer *Mailer) (*ReminderService, *EventoService, *stubStore) {
	t.Helper()

	store := newStubStore()
	eventiRepo := repositories.NewEventoRepository(store)
	condRepo := repositories.NewCondominioRepository(store)

	condSvc := NewCondominioService(condRepo)
	_, err := condSvc.Create(context.Background(), dtos.CreateCondominioRequest{
		Nome:          "Residenza Prova",
		Indirizzo:     "Via Roma 1",
		City:          "Milano",
		Email:         "prova@example.com",
		CodiceFiscale: "11111111111",
	})
	require.NoError(t, err)

	eventoSvc := NewEventoService(eventiRepo, condRepo)
	reminder := NewReminderService(eventiRepo, condRepo, mailer, "Admin", "admin@example.com")
	return reminder, eventoSvc, store
}

func TestRunDailyDigestDisabledMailer(t *testing.T) {
	reminder, eventoSvc, _ := newReminderFixture(t, NewMailer("", "Kondo", "noreply@example.com", true))

	condID := 1
	_, err := eventoSvc.Create(context.Background(), dtos.CreateEventoRequest{
		Title:        "Assemblea ordinaria",
		Category:     "assembly",
		StartsAt:     time.Now().Add(2 * time.Hour).Format(time.RFC3339),
		CondominioID: &condID,
	})
	require.NoError(t, err)

	// Delivery disabled, the digest is a no-op even with upcoming events.
	require.NoError(t, reminder.RunDailyDigest(context.Background()))
}

func TestRunDailyDigestNoUpcomingEvents(t *testing.T) {
	reminder, eventoSvc, _ := newReminderFixture(t, NewMailer("sg-test-key", "Kondo", "noreply@example.com", true))

	condID := 1
	past := time.Now().Add(-3 * time.Hour).Format(time.RFC3339)
	farAhead := time.Now().Add(48 * time.Hour).Format(time.RFC3339)

	for _, startsAt := range []string{past, farAhead} {
		_, err := eventoSvc.Create(context.Background(), dtos.CreateEventoRequest{
			Title:        "Manutenzione caldaia",
			Category:     "maintenance",
			StartsAt:     startsAt,
			CondominioID: &condID,
		})
		require.NoError(t, err)
	}

	// Nothing falls inside the next 24 hours, so no mail is attempted.
	require.NoError(t, reminder.RunDailyDigest(context.Background()))
}

func TestRunDailyDigestSkipsUnparsableStartDates(t *testing.T) {
	reminder, _, store := newReminderFixture(t, NewMailer("sg-test-key", "Kondo", "noreply@example.com", true))

	// A record with a broken timestamp must not break the digest run.
	_, err := store.Insert(context.Background(), storage.TableEventi, storage.Record{
		"title":     "Evento corrotto",
		"category":  "other",
		"starts_at": "domani mattina",
	})
	require.NoError(t, err)
	require.NoError(t, reminder.RunDailyDigest(context.Background()))
}
