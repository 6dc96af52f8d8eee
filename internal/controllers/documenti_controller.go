package controllers

import (
	"net/http"

	"github.com/baleight/AmministrazioneCondomini/internal/dtos"
	"github.com/baleight/AmministrazioneCondomini/internal/services"
	"github.com/baleight/AmministrazioneCondomini/internal/utils"
)

type DocumentiController struct {
	service *services.DocumentoService
}

func NewDocumentiController(service *services.DocumentoService) *DocumentiController {
	return &DocumentiController{service: service}
}

// GET /api/v1/documenti
func (c *DocumentiController) ListHandler(w http.ResponseWriter, r *http.Request) {
	all, err := c.service.List(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, all)
}

// POST /api/v1/documenti
func (c *DocumentiController) UploadHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.UploadDocumentoRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	created, err := c.service.Upload(r.Context(), req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, created)
}

// PATCH /api/v1/documenti/{id}
func (c *DocumentiController) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dtos.UpdateDocumentoRequest
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

// DELETE /api/v1/documenti/{id}
func (c *DocumentiController) DeleteHandler(w http.ResponseWriter, r *http.Request) {
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
