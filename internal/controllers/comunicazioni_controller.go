package controllers

import (
	"net/http"

	"github.com/baleight/AmministrazioneCondomini/internal/dtos"
	"github.com/baleight/AmministrazioneCondomini/internal/services"
	"github.com/baleight/AmministrazioneCondomini/internal/utils"
)

type ComunicazioniController struct {
	service *services.ComunicazioneService
}

func NewComunicazioniController(service *services.ComunicazioneService) *ComunicazioniController {
	return &ComunicazioniController{service: service}
}

// GET /api/v1/comunicazioni
func (c *ComunicazioniController) ListHandler(w http.ResponseWriter, r *http.Request) {
	all, err := c.service.List(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, all)
}

// POST /api/v1/comunicazioni
func (c *ComunicazioniController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateComunicazioneRequest
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

// PATCH /api/v1/comunicazioni/{id}
func (c *ComunicazioniController) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dtos.UpdateComunicazioneRequest
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

// DELETE /api/v1/comunicazioni/{id}
func (c *ComunicazioniController) DeleteHandler(w http.ResponseWriter, r *http.Request) {
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

// POST /api/v1/comunicazioni/draft
func (c *ComunicazioniController) DraftHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.DraftComunicazioneRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	draft, err := c.service.Draft(r.Context(), req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, draft)
}

// POST /api/v1/comunicazioni/{id}/send
func (c *ComunicazioniController) SendHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	result, err := c.service.Send(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}
