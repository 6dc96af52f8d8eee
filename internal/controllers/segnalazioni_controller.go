package controllers

import (
	"net/http"

	"github.com/baleight/AmministrazioneCondomini/internal/dtos"
	"github.com/baleight/AmministrazioneCondomini/internal/services"
	"github.com/baleight/AmministrazioneCondomini/internal/utils"
)

type SegnalazioniController struct {
	service *services.SegnalazioneService
}

func NewSegnalazioniController(service *services.SegnalazioneService) *SegnalazioniController {
	return &SegnalazioniController{service: service}
}

// GET /api/v1/segnalazioni
func (c *SegnalazioniController) ListHandler(w http.ResponseWriter, r *http.Request) {
	all, err := c.service.List(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, all)
}

// POST /api/v1/segnalazioni
func (c *SegnalazioniController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateSegnalazioneRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	created, err := c.service.Create(r.Context(), req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, created)
}

// PATCH /api/v1/segnalazioni/{id}
func (c *SegnalazioniController) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dtos.UpdateSegnalazioneRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	updated, err := c.service.Update(r.Context(), id, req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, updated)
}

// DELETE /api/v1/segnalazioni/{id}
func (c *SegnalazioniController) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := c.service.Delete(r.Context(), id); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"deleted": id})
}

// POST /api/v1/segnalazioni/{id}/analyze
func (c *SegnalazioniController) AnalyzeHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	analyzed, err := c.service.Analyze(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.AnalyzeSegnalazioneResponse{
		ID:         analyzed.ID,
		AIAnalysis: analyzed.AIAnalysis,
	})
}
