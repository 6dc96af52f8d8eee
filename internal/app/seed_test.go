package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/baleight/AmministrazioneCondomini/internal/repositories"
	"github.com/baleight/AmministrazioneCondomini/internal/storage"
)

func TestSeedDemoDataIdempotent(t *testing.T) {
	store, err := storage.NewLocalStore(filepath.Join(t.TempDir(), "kondo.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	condRepo := repositories.NewCondominioRepository(store)
	anagRepo := repositories.NewAnagraficaRepository(store)
	immRepo := repositories.NewImmobileRepository(store)
	segRepo := repositories.NewSegnalazioneRepository(store)
	evRepo := repositories.NewEventoRepository(store)

	ctx := context.Background()
	seed := func() {
		require.NoError(t, SeedDemoData(ctx, condRepo, anagRepo, immRepo, segRepo, evRepo))
	}

	seed()
	seed()

	condomini, err := condRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, condomini, 1)

	people, err := anagRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, people, 2)

	units, err := immRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, units, 2)

	tickets, err := segRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, tickets, 1)

	events, err := evRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
}
