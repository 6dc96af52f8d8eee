package controllers

import (
	"net/http"
	"strconv"

	"github.com/baleight/AmministrazioneCondomini/internal/dtos"
	"github.com/baleight/AmministrazioneCondomini/internal/services"
	"github.com/baleight/AmministrazioneCondomini/internal/utils"
)

type ImmobiliController struct {
	service *services.ImmobileService
}

func NewImmobiliController(service *services.ImmobileService) *ImmobiliController {
	return &ImmobiliController{service: service}
}

// GET /api/v1/immobili?condominio_id=N
func (c *ImmobiliController) ListHandler(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("condominio_id"); raw != "" {
		condID, err := strconv.Atoi(raw)
		if err != nil || condID <= 0 {
			utils.RespondErrorWithCode(
				w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid condominio_id query parameter", nil, err,
			)
			return
		}
		units, err := c.service.ListByCondominio(r.Context(), condID)
		if err != nil {
			utils.HandleAppError(w, err)
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, units)
		return
	}

	all, err := c.service.List(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, all)
}

// POST /api/v1/immobili
func (c *ImmobiliController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateImmobileRequest
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

// PATCH /api/v1/immobili/{id}
func (c *ImmobiliController) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dtos.UpdateImmobileRequest
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

// DELETE /api/v1/immobili/{id}
func (c *ImmobiliController) DeleteHandler(w http.ResponseWriter, r *http.Request) {
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
