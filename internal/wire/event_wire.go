package wire

import (
	"net/http"

	"event-hub/internal/adaptor"
	"event-hub/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireEvent(
	r chi.Router,
	eventHandler *adaptor.EventHandler,
	auth func(http.Handler) http.Handler,
	logger *zap.Logger,
) {
	// Every event route requires authentication
	r.Route("/userEvent", func(r chi.Router) {
		r.Use(auth)

		r.Get("/", eventHandler.GetMyEvents)
		r.Post("/", eventHandler.CreateEvent)
		r.Get("/all", eventHandler.GetOtherEvents)
		r.Delete("/{id}", eventHandler.DeleteEvent)

		// Registration is additionally throttled to once per user per day
		r.With(middleware.RegistrationLimit(logger)).
			Post("/register-event/{id}", eventHandler.RegisterForEvent)
	})
}
