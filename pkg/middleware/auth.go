package middleware

import (
	"errors"
	"net/http"
	"strings"

	"event-hub/internal/data/repository"
	"event-hub/pkg/token"
	"event-hub/pkg/utils"

	"go.uber.org/zap"
)

// AuthJWT validates the bearer token and resolves it to a user.
//
// Rejections follow the documented contract: missing/malformed header and
// revoked or unverifiable tokens get 400, an expired token gets 401 so the
// client can prompt a re-login. On success the resolved user and the raw
// token are attached to the request context.
func AuthJWT(
	manager *token.Manager,
	blacklist *token.Blacklist,
	userRepo repository.UserRepository,
	authConfig utils.AuthConfig,
	logger *zap.Logger,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				utils.ResponseBadRequest(w, "Invalid headers", nil)
				return
			}

			tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
			if tokenString == "" {
				utils.ResponseBadRequest(w, "Invalid token", nil)
				return
			}

			if blacklist.Contains(tokenString) {
				logger.Warn("Blacklisted token used", zap.String("path", r.URL.Path))
				utils.ResponseBadRequest(w, "This token is blacklisted", nil)
				return
			}

			claims, err := manager.Verify(tokenString)
			if err != nil {
				if errors.Is(err, token.ErrExpired) {
					utils.ResponseUnauthorized(w, "Token has expired, please login again")
					return
				}
				logger.Warn("Token verification failed", zap.Error(err))
				utils.ResponseBadRequest(w, "An error occurred while verifying token", nil)
				return
			}

			// Resolve the email claim to a user record
			user, err := userRepo.FindByEmail(r.Context(), claims.Email)
			if err != nil {
				logger.Error("Failed to resolve token user",
					zap.Error(err),
					zap.String("email", claims.Email))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}
			if user == nil {
				utils.ResponseBadRequest(w, "Unauthorized access", nil)
				return
			}

			// Disabled accounts keep working tokens unless enforcement is on
			if authConfig.EnforceActive && !user.Activity {
				logger.Warn("Disabled account used a valid token",
					zap.String("user_id", user.ID.String()))
				utils.ResponseForbidden(w, "you have been disabled by admin.")
				return
			}

			ctx := utils.SetUserContext(r.Context(), user.ID, user.Email, string(user.Role))
			ctx = utils.SetTokenContext(ctx, tokenString)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
