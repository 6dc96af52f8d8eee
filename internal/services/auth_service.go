package services

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/baleight/AmministrazioneCondomini/internal/config"
	"github.com/baleight/AmministrazioneCondomini/internal/models"
	"github.com/baleight/AmministrazioneCondomini/internal/repositories"
	"github.com/baleight/AmministrazioneCondomini/internal/utils"
)

const TokenIssuer = "KondoManager"

// AuthService turns a (login identifier, secret) pair into a session.
type AuthService interface {
	// Login authenticates and returns the principal plus a signed
	// access token.
	Login(ctx context.Context, email, password string) (*models.User, string, error)
}

type authService struct {
	cfg      *config.Config
	anagRepo repositories.AnagraficaRepository
}

func NewAuthService(cfg *config.Config, anagRepo repositories.AnagraficaRepository) AuthService {
	return &authService{cfg: cfg, anagRepo: anagRepo}
}

// Login checks the administrator credential first, then falls back to
// the anagrafiche collection, where the codice fiscale acts as the
// secret. Unknown identifier and wrong secret are indistinguishable to
// the caller.
func (s *authService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	if strings.EqualFold(email, s.cfg.AdminEmail) && password == s.cfg.AdminPassword {
		user := &models.User{
			ID:    0,
			Nome:  s.cfg.AdminName,
			Email: s.cfg.AdminEmail,
			Role:  models.RoleAdmin,
		}
		token, err := s.issueToken(user)
		if err != nil {
			return nil, "", err
		}
		return user, token, nil
	}

	person, err := s.anagRepo.FindByEmail(ctx, email)
	if err != nil {
		// A storage failure is not a credential failure; surface it so
		// the caller can retry rather than re-type a password.
		return nil, "", err
	}
	if person != nil && person.CodiceFiscale != "" && person.CodiceFiscale == password {
		user := &models.User{
			ID:    person.ID,
			Nome:  person.Nome,
			Email: person.Email,
			Role:  models.RoleUser,
		}
		token, err := s.issueToken(user)
		if err != nil {
			return nil, "", err
		}
		return user, token, nil
	}

	return nil, "", utils.NewAppError(
		http.StatusUnauthorized,
		utils.ErrCodeInvalidCredentials,
		"Invalid email or password",
		utils.ErrInvalidCredentials,
	)
}

func (s *authService) issueToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iss":   TokenIssuer,
		"sub":   strconv.Itoa(user.ID),
		"name":  user.Nome,
		"email": user.Email,
		"role":  string(user.Role),
		"exp":   now.Add(s.cfg.TokenExpiry).Unix(),
		"iat":   now.Unix(),
		"jti":   uuid.NewString(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	return token.SignedString(s.cfg.RSAPrivateKey)
}
