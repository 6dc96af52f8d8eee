package middleware

import (
	"context"
	"crypto/rsa"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/baleight/AmministrazioneCondomini/internal/models"
	"github.com/baleight/AmministrazioneCondomini/internal/services"
	"github.com/baleight/AmministrazioneCondomini/internal/utils"
)

type contextKey string

const ContextKeySession = contextKey("session")

// SessionFromContext returns the authenticated principal, or nil on
// unauthenticated requests (only possible on routes outside the
// secured subrouter).
func SessionFromContext(ctx context.Context) *models.User {
	user, _ := ctx.Value(ContextKeySession).(*models.User)
	return user
}

// AuthMiddleware validates the bearer token and threads the session
// through the request context. Missing or invalid tokens answer 401.
func AuthMiddleware(pub *rsa.PublicKey) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr, err := extractAccessToken(r)
			if err != nil {
				utils.RespondErrorWithCode(
					w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, err.Error(), nil,
				)
				return
			}

			tok, vErr := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
					return nil, errors.New("unexpected signing method")
				}
				return pub, nil
			},
				jwt.WithIssuer(services.TokenIssuer),
				jwt.WithExpirationRequired(),
			)
			if vErr != nil || !tok.Valid {
				if errors.Is(vErr, jwt.ErrTokenExpired) {
					utils.RespondErrorWithCode(
						w, http.StatusUnauthorized, utils.ErrCodeTokenExpired, "Token expired", nil, vErr,
					)
					return
				}
				utils.RespondErrorWithCode(
					w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid token", nil, vErr,
				)
				return
			}

			user, ok := sessionFromClaims(tok.Claims)
			if !ok {
				utils.RespondErrorWithCode(
					w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid claims", nil,
				)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeySession, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireView gates a route on the capability resolver's view table.
func RequireView(view services.View) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := SessionFromContext(r.Context())
			if user == nil || !services.CanAccessView(user.Role, view) {
				utils.RespondErrorWithCode(
					w, http.StatusForbidden, utils.ErrCodeForbidden, "Access to this view is not permitted", nil,
				)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAction gates a route on the (role, action, entity) table.
func RequireAction(action services.Action, entity services.Entity) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := SessionFromContext(r.Context())
			if user == nil || !services.Can(user.Role, action, entity) {
				utils.RespondErrorWithCode(
					w, http.StatusForbidden, utils.ErrCodeForbidden, "This action is not permitted for your role", nil,
				)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func extractAccessToken(r *http.Request) (string, error) {
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return "", errors.New("missing Authorization header")
	}
	return strings.TrimPrefix(h, "Bearer "), nil
}

func sessionFromClaims(c jwt.Claims) (*models.User, bool) {
	claims, ok := c.(jwt.MapClaims)
	if !ok {
		return nil, false
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return nil, false
	}
	id, err := strconv.Atoi(sub)
	if err != nil {
		return nil, false
	}
	name, _ := claims["name"].(string)
	email, _ := claims["email"].(string)
	roleStr, _ := claims["role"].(string)

	return &models.User{
		ID:    id,
		Nome:  name,
		Email: email,
		Role:  services.NormalizeRole(models.Role(roleStr)),
	}, true
}
