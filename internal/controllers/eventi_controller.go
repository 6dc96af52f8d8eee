package controllers

import (
	"net/http"

	"github.com/baleight/AmministrazioneCondomini/internal/dtos"
	"github.com/baleight/AmministrazioneCondomini/internal/services"
	"github.com/baleight/AmministrazioneCondomini/internal/utils"
)

type EventiController struct {
	service *services.EventoService
}

func NewEventiController(service *services.EventoService) *EventiController {
	return &EventiController{service: service}
}

// GET /api/v1/eventi
func (c *EventiController) ListHandler(w http.ResponseWriter, r *http.Request) {
	all, err := c.service.List(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, all)
}

// POST /api/v1/eventi
func (c *EventiController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateEventoRequest
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

// PATCH /api/v1/eventi/{id}
func (c *EventiController) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dtos.UpdateEventoRequest
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

// DELETE /api/v1/eventi/{id}
func (c *EventiController) DeleteHandler(w http.ResponseWriter, r *http.Request) {
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
