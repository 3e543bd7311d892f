package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt"
	"go.uber.org/zap"
)

const bearerPrefix = "Bearer "

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name TokenValidator . TokenValidator
type TokenValidator interface {
	Validate(token string) (jwt.MapClaims, error)
}

type AuthMiddleware struct {
	logs      *zap.SugaredLogger
	validator TokenValidator
}

func NewAuthMiddleware(logger *zap.SugaredLogger, validator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		logs:      logger,
		validator: validator,
	}
}

// Authenticate rejects requests without a valid bearer token.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := RequestIDFrom(r.Context())

		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			m.unauthorized(w, "bearer token is required")
			m.logs.Warnw("missing bearer token", "path", r.URL.Path, "request_id", requestID)
			return
		}

		claims, err := m.validator.Validate(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			m.unauthorized(w, err.Error())
			m.logs.Warnw("token validation failed", "error", err, "path", r.URL.Path, "request_id", requestID)
			return
		}

		m.logs.Debugw("request authenticated", "subject", claims["sub"], "request_id", requestID)
		next.ServeHTTP(w, r)
	})
}

func (m *AuthMiddleware) unauthorized(w http.ResponseWriter, reason string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"message": "Authentication failed",
		"error":   reason,
	})
}
