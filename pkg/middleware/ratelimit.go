package middleware

import (
	"net/http"
	"sync"
	"time"

	"event-hub/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// registrationWindow is the rolling window for event registrations:
// one attempt per user per day, regardless of which event it targets.
const registrationWindow = 24 * time.Hour

type limiterStore struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func (s *limiterStore) limiter(key string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, ok := s.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(rate.Every(registrationWindow), 1)
		s.limiters[key] = limiter
	}
	return limiter
}

// RegistrationLimit throttles event registration per authenticated user.
// State is process-local; a multi-instance deployment would need this
// backed by shared storage.
func RegistrationLimit(logger *zap.Logger) func(http.Handler) http.Handler {
	store := &limiterStore{limiters: make(map[string]*rate.Limiter)}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := utils.GetUserIDFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			if !store.limiter(userID.String()).Allow() {
				logger.Warn("Registration rate limit hit",
					zap.String("user_id", userID.String()))
				w.Header().Set("Retry-After", "86400")
				utils.ResponseTooManyRequests(w, "You can only register for an event once per day")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
