package dtos

import (
	"github.com/baleight/AmministrazioneCondomini/internal/models"
)

// ----------------------
// Requests
// ----------------------

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ----------------------
// Responses
// ----------------------

type LoginResponse struct {
	User        models.User `json:"user"`
	AccessToken string      `json:"access_token"`
}

type MeResponse struct {
	User models.User `json:"user"`
}
