package controllers

import (
	"net/http"

	"github.com/baleight/AmministrazioneCondomini/internal/utils"
)

type HealthController struct {
	appName string
}

func NewHealthController(appName string) *HealthController {
	return &HealthController{appName: appName}
}

// GET /health
func (c *HealthController) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": c.appName,
	})
}
