package wire

import (
	"net/http"

	"event-hub/internal/adaptor"
	"event-hub/internal/data/repository"
	"event-hub/internal/usecase"
	"event-hub/pkg/email"
	"event-hub/pkg/middleware"
	"event-hub/pkg/token"
	"event-hub/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	tokens := token.NewManager(config.JWT.Secret, config.JWT.ExpiryHours)
	blacklist := token.NewBlacklist()
	mailer := email.NewMailer(config.Email, logger)

	service := usecase.NewService(repo, config, tokens, blacklist, mailer, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, tokens, blacklist, config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the chi router
func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	tokens *token.Manager,
	blacklist *token.Blacklist,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	auth := middleware.AuthJWT(tokens, blacklist, repo.User, config.Auth, logger)

	wireUser(r, handler.Auth, handler.User, auth)
	wireEvent(r, handler.Event, auth, logger)

	// Home route
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("this is home route"))
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
