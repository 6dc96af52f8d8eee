package controllers

import (
	"net/http"

	"github.com/baleight/AmministrazioneCondomini/internal/dtos"
	"github.com/baleight/AmministrazioneCondomini/internal/middleware"
	"github.com/baleight/AmministrazioneCondomini/internal/services"
	"github.com/baleight/AmministrazioneCondomini/internal/utils"
)

type AuthController struct {
	authService services.AuthService
}

func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// ----------------------------------------------------------------
// POST /api/v1/auth/login
// ----------------------------------------------------------------
func (c *AuthController) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, token, err := c.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.LoginResponse{
		User:        *user,
		AccessToken: token,
	})
}

// ----------------------------------------------------------------
// GET /api/v1/auth/me
// ----------------------------------------------------------------
func (c *AuthController) MeHandler(w http.ResponseWriter, r *http.Request) {
	user := middleware.SessionFromContext(r.Context())
	if user == nil {
		utils.RespondErrorWithCode(
			w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "No session in context", nil,
		)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MeResponse{User: *user})
}

// ----------------------------------------------------------------
// GET /api/v1/permissions
// ----------------------------------------------------------------
func (c *AuthController) PermissionsHandler(w http.ResponseWriter, r *http.Request) {
	user := middleware.SessionFromContext(r.Context())
	if user == nil {
		utils.RespondErrorWithCode(
			w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "No session in context", nil,
		)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, services.ResolvePermissions(user.Role))
}
