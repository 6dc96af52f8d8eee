package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/baleight/AmministrazioneCondomini/internal/models"
	"github.com/baleight/AmministrazioneCondomini/internal/repositories"
	"github.com/baleight/AmministrazioneCondomini/internal/services"
	"github.com/baleight/AmministrazioneCondomini/internal/storage"
)

func newImmobiliRouter(t *testing.T) (*mux.Router, []int) {
	t.Helper()

	store, err := storage.NewLocalStore(filepath.Join(t.TempDir(), "kondo.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	condRepo := repositories.NewCondominioRepository(store)
	anagRepo := repositories.NewAnagraficaRepository(store)
	ctx := context.Background()

	condIDs := make([]int, 0, 2)
	for _, c := range []models.Condominio{
		{Nome: "Aurora", Indirizzo: "Via Roma 12", City: "Milano", CodiceFiscale: "111"},
		{Nome: "Verdi", Indirizzo: "Via Po 3", City: "Torino", CodiceFiscale: "222"},
	} {
		created, err := condRepo.Create(ctx, &c)
		require.NoError(t, err)
		condIDs = append(condIDs, created.ID)
	}

	svc := services.NewImmobileService(repositories.NewImmobileRepository(store), condRepo, anagRepo)
	ctrl := NewImmobiliController(svc)

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/immobili", ctrl.ListHandler).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/immobili", ctrl.CreateHandler).Methods(http.MethodPost)
	return r, condIDs
}

func TestImmobiliListFiltersByCondominio(t *testing.T) {
	r, condIDs := newImmobiliRouter(t)

	for _, payload := range []map[string]any{
		{"condominio_id": condIDs[0], "nome": "1A", "superficie": 85.5},
		{"condominio_id": condIDs[0], "nome": "2B", "superficie": 62},
		{"condominio_id": condIDs[1], "nome": "PT", "superficie": 110},
	} {
		rec := doJSON(t, r, http.MethodPost, "/api/v1/immobili", payload)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doJSON(t, r, http.MethodGet, "/api/v1/immobili", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var all []models.Immobile
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&all))
	require.Len(t, all, 3)

	rec = doJSON(t, r, http.MethodGet, "/api/v1/immobili?condominio_id=1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var filtered []models.Immobile
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&filtered))
	require.Len(t, filtered, 2)
	for _, unit := range filtered {
		require.Equal(t, condIDs[0], unit.CondominioID)
	}
}

func TestImmobiliListInvalidCondominioFilter(t *testing.T) {
	r, _ := newImmobiliRouter(t)

	for _, raw := range []string{"abc", "0", "-3"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/immobili?condominio_id="+raw, nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "invalid_payload")
	}
}
