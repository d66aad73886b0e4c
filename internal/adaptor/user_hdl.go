package adaptor

import (
	"encoding/json"
	"net/http"

	"event-hub/internal/dto/request"
	"event-hub/internal/usecase"
	"event-hub/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log,
	}
}

// GetAllUsers handles GET /user/all
func (h *UserHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.GetAllUsers(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get all users")
		return
	}

	utils.ResponseSuccess(w, "Users retrieved successfully", users)
}

// GetNonAdminUsers handles GET /user/admin-route
func (h *UserHandler) GetNonAdminUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.GetNonAdminUsers(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get non-admin users")
		return
	}

	utils.ResponseSuccess(w, "Users retrieved successfully", users)
}

// UpdateRole handles PATCH /user/update-role/{id}
func (h *UserHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if userID == "" {
		utils.ResponseBadRequest(w, "User ID is required", nil)
		return
	}

	var req request.UpdateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.UpdateRole(r.Context(), userID, req.Role); err != nil {
		handleServiceError(w, h.log, err, "update role")
		return
	}

	utils.ResponseSuccess(w, "User role has been updated", nil)
}

// ToggleActivity handles PATCH /user/toggle-activity/{id}
func (h *UserHandler) ToggleActivity(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if userID == "" {
		utils.ResponseBadRequest(w, "User ID is required", nil)
		return
	}

	active, err := h.service.ToggleActivity(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "toggle activity")
		return
	}

	state := "Disabled"
	if active {
		state = "Enabled"
	}
	utils.ResponseSuccess(w, "User has been "+state, nil)
}

// DeleteUser handles DELETE /user/{id}, cascading to owned events
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if userID == "" {
		utils.ResponseBadRequest(w, "User ID is required", nil)
		return
	}

	if err := h.service.DeleteUser(r.Context(), userID); err != nil {
		handleServiceError(w, h.log, err, "delete user")
		return
	}

	utils.ResponseSuccess(w, "User deleted", nil)
}
