package app

import (
	"net/http"
	"time"

	"github.com/baleight/AmministrazioneCondomini/internal/config"
	"github.com/baleight/AmministrazioneCondomini/internal/storage"
	"github.com/baleight/AmministrazioneCondomini/internal/utils"
)

const remoteCallTimeout = 30 * time.Second

type App struct {
	Config *config.Config
	Store  storage.Store

	local *storage.LocalStore
}

// NewApp picks the record backend from config and wraps it with the
// field cipher. The choice is made once at boot; the rest of the code
// only ever sees the storage.Store interface.
func NewApp(cfg *config.Config) (*App, error) {
	app := &App{Config: cfg}

	var backend storage.Store
	if cfg.SheetEndpointURL != "" {
		utils.Logger.Infof("Using remote sheet backend at %s", cfg.SheetEndpointURL)
		backend = storage.NewSheetStore(cfg.SheetEndpointURL, &http.Client{Timeout: remoteCallTimeout})
	} else {
		utils.Logger.Infof("Using local sqlite backend at %s", cfg.LocalDBPath)
		local, err := storage.NewLocalStore(cfg.LocalDBPath)
		if err != nil {
			return nil, err
		}
		app.local = local
		backend = local
	}

	app.Store = storage.NewFieldCipher(backend, cfg.FieldEncryptionKey, cfg.ExtraSensitiveFields)
	return app, nil
}

func (a *App) Close() {
	if a.local != nil {
		if err := a.local.Close(); err != nil {
			utils.Logger.WithError(err).Warn("Closing local store failed.")
			return
		}
		utils.Logger.Info("Local store closed.")
	}
}
