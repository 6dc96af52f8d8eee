package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/baleight/AmministrazioneCondomini/internal/dtos"
	"github.com/baleight/AmministrazioneCondomini/internal/models"
	"github.com/baleight/AmministrazioneCondomini/internal/repositories"
	"github.com/baleight/AmministrazioneCondomini/internal/utils"
)

func newEventoFixture(t *testing.T) (*EventoService, int) {
	t.Helper()
	store := newStubStore()
	condRepo := repositories.NewCondominioRepository(store)
	cond, err := condRepo.Create(context.Background(), &models.Condominio{Nome: "Aurora", Indirizzo: "Via Roma 12", City: "Milano", CodiceFiscale: "111"})
	require.NoError(t, err)
	return NewEventoService(repositories.NewEventoRepository(store), condRepo), cond.ID
}

func rfc3339(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func TestEventoCreate(t *testing.T) {
	svc, condID := newEventoFixture(t)
	start := time.Now().Add(24 * time.Hour)

	created, err := svc.Create(context.Background(), dtos.CreateEventoRequest{
		Title:        "Assemblea ordinaria",
		StartsAt:     rfc3339(start),
		EndsAt:       rfc3339(start.Add(2 * time.Hour)),
		Category:     "assembly",
		CondominioID: &condID,
	})
	require.NoError(t, err)
	require.Equal(t, 1, created.ID)
	require.Equal(t, models.EventAssembly, created.Category)
}

func TestEventoCreateRejectsBadTimestamp(t *testing.T) {
	svc, _ := newEventoFixture(t)

	_, err := svc.Create(context.Background(), dtos.CreateEventoRequest{
		Title: "X", StartsAt: "next tuesday", Category: "other",
	})
	requireAppErrorMessage(t, err, "starts_at")
}

func TestEventoCreateRejectsEndBeforeStart(t *testing.T) {
	svc, _ := newEventoFixture(t)
	start := time.Now().Add(24 * time.Hour)

	_, err := svc.Create(context.Background(), dtos.CreateEventoRequest{
		Title:    "X",
		StartsAt: rfc3339(start),
		EndsAt:   rfc3339(start.Add(-time.Hour)),
		Category: "other",
	})
	requireAppErrorMessage(t, err, "ends_at must be after starts_at")
}

func TestEventoCreateUnknownCondominio(t *testing.T) {
	svc, _ := newEventoFixture(t)
	ghost := 99

	_, err := svc.Create(context.Background(), dtos.CreateEventoRequest{
		Title:        "X",
		StartsAt:     rfc3339(time.Now()),
		Category:     "other",
		CondominioID: &ghost,
	})
	requireAppErrorMessage(t, err, "Condominio 99")
}

func TestEventoUpdateChecksWindowAgainstStoredBound(t *testing.T) {
	svc, condID := newEventoFixture(t)
	ctx := context.Background()
	start := time.Now().Add(24 * time.Hour)

	created, err := svc.Create(ctx, dtos.CreateEventoRequest{
		Title:        "Assemblea",
		StartsAt:     rfc3339(start),
		EndsAt:       rfc3339(start.Add(2 * time.Hour)),
		Category:     "assembly",
		CondominioID: &condID,
	})
	require.NoError(t, err)

	// Moving the start past the stored end must fail even though the
	// request itself only carries one bound.
	lateStart := rfc3339(start.Add(3 * time.Hour))
	_, err = svc.Update(ctx, created.ID, dtos.UpdateEventoRequest{StartsAt: &lateStart})
	requireAppErrorMessage(t, err, "ends_at must be after starts_at")

	// Moving it within the window succeeds.
	okStart := rfc3339(start.Add(time.Hour))
	updated, err := svc.Update(ctx, created.ID, dtos.UpdateEventoRequest{StartsAt: &okStart})
	require.NoError(t, err)
	require.Equal(t, okStart, updated.StartsAt)
}

func TestEventoUpdateClearCondominio(t *testing.T) {
	svc, condID := newEventoFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, dtos.CreateEventoRequest{
		Title:        "Scadenza polizza",
		StartsAt:     rfc3339(time.Now().Add(48 * time.Hour)),
		Category:     "deadline",
		CondominioID: &condID,
	})
	require.NoError(t, err)
	require.NotNil(t, created.CondominioID)

	updated, err := svc.Update(ctx, created.ID, dtos.UpdateEventoRequest{ClearCondominio: true})
	require.NoError(t, err)
	require.Nil(t, updated.CondominioID)
}

func TestEventoUpdateNotFound(t *testing.T) {
	svc, _ := newEventoFixture(t)

	title := "Ghost"
	_, err := svc.Update(context.Background(), 77, dtos.UpdateEventoRequest{Title: &title})
	require.Error(t, err)
	appErr, ok := err.(*utils.AppError)
	require.True(t, ok)
	require.Equal(t, 404, appErr.StatusCode)
}
