package wire

import (
	"net/http"

	"event-hub/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireUser(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	userHandler *adaptor.UserHandler,
	auth func(http.Handler) http.Handler,
) {
	r.Route("/user", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Get("/all", userHandler.GetAllUsers)
		r.Get("/admin-route", userHandler.GetNonAdminUsers)
		r.Delete("/{id}", userHandler.DeleteUser)
		r.Patch("/update-role/{id}", userHandler.UpdateRole)
		r.Patch("/toggle-activity/{id}", userHandler.ToggleActivity)

		// ==================== PROTECTED ROUTES ====================
		// Logout needs a valid token so it can revoke it
		r.With(auth).Post("/logout", authHandler.Logout)
	})
}
