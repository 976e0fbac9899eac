package middlewares

import (
	"context"
	"net/http"
	"strings"

	"lexbook-service/internal/app/models"
	"lexbook-service/internal/pkg/constvars"
	"lexbook-service/internal/pkg/exceptions"
	"lexbook-service/internal/pkg/utils"

	"github.com/goccy/go-json"
)

// Authenticate resolves the bearer token to a live redis session and stores
// the raw session JSON in the request context.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		sessionData, err := m.AuthUsecase.ResolveSession(r.Context(), token)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, sessionData)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRoles gates a route on the session role. Must run after
// Authenticate.
func (m *Middlewares) RequireRoles(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := SessionFromContext(r.Context())
			if err != nil {
				utils.BuildErrorResponse(m.Log, w, err)
				return
			}

			for _, role := range roles {
				if session.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			utils.LogSecurityEvent(m.Log, "role_denied", utils.GetRequestID(r.Context()), "medium")
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrNotMatchRoleType(nil))
		})
	}
}

func SessionFromContext(ctx context.Context) (*models.Session, error) {
	sessionData, ok := ctx.Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		return nil, exceptions.ErrTokenMissing(nil)
	}

	var session models.Session
	if err := json.Unmarshal([]byte(sessionData), &session); err != nil {
		return nil, exceptions.ErrTokenInvalidOrExpired(err)
	}
	return &session, nil
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get(constvars.HeaderAuthorization)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
