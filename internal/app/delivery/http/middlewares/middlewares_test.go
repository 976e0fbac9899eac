package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"lexbook-service/internal/app/models"
	"lexbook-service/internal/pkg/constvars"
	"lexbook-service/internal/pkg/dto/requests"
	"lexbook-service/internal/pkg/dto/responses"
	"lexbook-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAuthUsecase struct {
	sessions map[string]string
}

func (f *fakeAuthUsecase) RegisterUser(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error) {
	return nil, nil
}

func (f *fakeAuthUsecase) LoginUser(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error) {
	return nil, nil
}

func (f *fakeAuthUsecase) LogoutUser(ctx context.Context, sessionID string) error {
	return nil
}

func (f *fakeAuthUsecase) ResolveSession(ctx context.Context, token string) (string, error) {
	sessionData, ok := f.sessions[token]
	if !ok {
		return "", exceptions.ErrTokenInvalidOrExpired(nil)
	}
	return sessionData, nil
}

func sessionJSON(t *testing.T, role string) string {
	t.Helper()
	data, err := json.Marshal(&models.Session{SessionID: "sess-1", UserID: "user-1", Role: role})
	require.NoError(t, err)
	return string(data)
}

func newTestMiddlewares(sessions map[string]string) *Middlewares {
	return &Middlewares{
		Log:         zap.NewNop(),
		AuthUsecase: &fakeAuthUsecase{sessions: sessions},
	}
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticate(t *testing.T) {
	t.Run("Valid Token Passes", func(t *testing.T) {
		m := newTestMiddlewares(map[string]string{"good-token": sessionJSON(t, constvars.LexbookRoleClient)})

		var gotSession string
		handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotSession, _ = r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodPost, "/logout", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, gotSession)
	})

	t.Run("Missing Header Is Unauthorized", func(t *testing.T) {
		m := newTestMiddlewares(nil)
		handler := m.Authenticate(okHandler())

		req := httptest.NewRequest(http.MethodPost, "/logout", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Unknown Token Is Unauthorized", func(t *testing.T) {
		m := newTestMiddlewares(map[string]string{})
		handler := m.Authenticate(okHandler())

		req := httptest.NewRequest(http.MethodPost, "/logout", nil)
		req.Header.Set("Authorization", "Bearer bad-token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireRoles(t *testing.T) {
	t.Run("Matching Role Passes", func(t *testing.T) {
		m := newTestMiddlewares(map[string]string{"admin-token": sessionJSON(t, constvars.LexbookRoleSuperadmin)})
		handler := m.Authenticate(m.RequireRoles(constvars.LexbookRoleSuperadmin)(okHandler()))

		req := httptest.NewRequest(http.MethodPost, "/lawyers", nil)
		req.Header.Set("Authorization", "Bearer admin-token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Wrong Role Is Forbidden", func(t *testing.T) {
		m := newTestMiddlewares(map[string]string{"client-token": sessionJSON(t, constvars.LexbookRoleClient)})
		handler := m.Authenticate(m.RequireRoles(constvars.LexbookRoleSuperadmin)(okHandler()))

		req := httptest.NewRequest(http.MethodPost, "/lawyers", nil)
		req.Header.Set("Authorization", "Bearer client-token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	m := newTestMiddlewares(nil)

	t.Run("Generates When Absent", func(t *testing.T) {
		var seen string
		handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		}))

		req := httptest.NewRequest(http.MethodGet, "/lawyers", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Contains(t, seen, constvars.REQUEST_ID_PREFIX)
		assert.Equal(t, seen, rec.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("Keeps Client Provided ID", func(t *testing.T) {
		var seen string
		handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		}))

		req := httptest.NewRequest(http.MethodGet, "/lawyers", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-supplied-id")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, "client-supplied-id", seen)
	})
}

func TestCallbackRateLimit(t *testing.T) {
	m := newTestMiddlewares(nil)
	handler := m.CallbackRateLimit(1, 1)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(constvars.PaymentCallbackSuccessToken))
	}))

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/payanyway/callback", nil))
	assert.Equal(t, "SUCCESS", first.Body.String())

	// Burst exhausted: throttled callbacks still answer 200 with FAIL.
	second := httptest.NewRecorder()
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/payanyway/callback", nil))
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "FAIL", second.Body.String())
}
