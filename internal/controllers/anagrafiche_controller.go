package controllers

import (
	"io"
	"net/http"

	"github.com/baleight/AmministrazioneCondomini/internal/dtos"
	"github.com/baleight/AmministrazioneCondomini/internal/services"
	"github.com/baleight/AmministrazioneCondomini/internal/utils"
)

type AnagraficheController struct {
	service *services.AnagraficaService
}

func NewAnagraficheController(service *services.AnagraficaService) *AnagraficheController {
	return &AnagraficheController{service: service}
}

// GET /api/v1/anagrafiche
func (c *AnagraficheController) ListHandler(w http.ResponseWriter, r *http.Request) {
	all, err := c.service.List(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, all)
}

// POST /api/v1/anagrafiche
func (c *AnagraficheController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateAnagraficaRequest
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

// PATCH /api/v1/anagrafiche/{id}
func (c *AnagraficheController) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dtos.UpdateAnagraficaRequest
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

// DELETE /api/v1/anagrafiche/{id}
func (c *AnagraficheController) DeleteHandler(w http.ResponseWriter, r *http.Request) {
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

// GET /api/v1/anagrafiche/export
func (c *AnagraficheController) ExportCSVHandler(w http.ResponseWriter, r *http.Request) {
	csvText, err := c.service.ExportCSV(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="anagrafiche.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(csvText))
}

// POST /api/v1/anagrafiche/import  (body: text/csv)
func (c *AnagraficheController) ImportCSVHandler(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil || len(body) == 0 {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Empty CSV body", nil, err,
		)
		return
	}
	result, err := c.service.ImportCSV(r.Context(), string(body))
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}
