package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"event-hub/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func rateLimitedHandler() http.Handler {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return RegistrationLimit(zap.NewNop())(next)
}

func registerRequest(handler http.Handler, userID uuid.UUID, eventID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/userEvent/register-event/"+eventID, nil)
	ctx := utils.SetUserContext(req.Context(), userID, "user@example.com", "User")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req.WithContext(ctx))
	return rec
}

func TestRegistrationLimitOncePerDay(t *testing.T) {
	handler := rateLimitedHandler()
	userID := uuid.New()

	// First attempt passes
	rec := registerRequest(handler, userID, "event-1")
	assert.Equal(t, http.StatusOK, rec.Code)

	// Second attempt inside the window is throttled, even for another event
	rec = registerRequest(handler, userID, "event-2")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "86400", rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), "once per day")
}

func TestRegistrationLimitPerUser(t *testing.T) {
	handler := rateLimitedHandler()

	// Limits are keyed per user, one user hitting the cap does not
	// affect another
	rec := registerRequest(handler, uuid.New(), "event-1")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = registerRequest(handler, uuid.New(), "event-1")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRegistrationLimitRequiresAuth(t *testing.T) {
	handler := rateLimitedHandler()

	req := httptest.NewRequest(http.MethodPost, "/userEvent/register-event/event-1", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
