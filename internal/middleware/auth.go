package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"fintrack/internal/auth"
	"fintrack/internal/logger"
	"fintrack/internal/models"
)

type contextKey string

const UserIDKey contextKey = "user_id"

type AuthMiddleware struct {
	jwt *auth.JWTManager
	log *logger.Logger
}

func NewAuthMiddleware(jwtManager *auth.JWTManager) *AuthMiddleware {
	return &AuthMiddleware{
		jwt: jwtManager,
		log: logger.New("auth-middleware"),
	}
}

// RequireAuth verifies the bearer token and attaches the resolved user id to
// the request context. Missing, malformed, tampered and expired tokens all
// produce the same 401 body.
func (m *AuthMiddleware) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			unauthorized(w)
			return
		}

		token := authHeader
		if strings.HasPrefix(authHeader, "Bearer ") {
			token = authHeader[7:]
		}

		claims, err := m.jwt.ValidateToken(token)
		if err != nil {
			m.log.Debug("token rejected: %v", err)
			unauthorized(w)
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

func GetUserID(ctx context.Context) string {
	if userID, ok := ctx.Value(UserIDKey).(string); ok {
		return userID
	}
	return ""
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(models.ErrorResponse{
		Error:   "unauthorized",
		Message: "Unauthorized",
	})
}
