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

type EventHandler struct {
	service usecase.EventService
	log     *zap.Logger
}

func NewEventHandler(service usecase.EventService, log *zap.Logger) *EventHandler {
	return &EventHandler{
		service: service,
		log:     log,
	}
}

// GetMyEvents handles GET /userEvent
func (h *EventHandler) GetMyEvents(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	events, err := h.service.GetMyEvents(r.Context(), userID.String())
	if err != nil {
		handleServiceError(w, h.log, err, "get my events")
		return
	}

	utils.ResponseSuccess(w, "Events retrieved successfully", events)
}

// CreateEvent handles POST /userEvent
func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	event, err := h.service.CreateEvent(r.Context(), userID.String(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create event")
		return
	}

	utils.ResponseCreated(w, "Event created successfully", event)
}

// GetOtherEvents handles GET /userEvent/all
func (h *EventHandler) GetOtherEvents(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	events, err := h.service.GetOtherEvents(r.Context(), userID.String())
	if err != nil {
		handleServiceError(w, h.log, err, "get other events")
		return
	}

	utils.ResponseSuccess(w, "Events retrieved successfully", events)
}

// DeleteEvent handles DELETE /userEvent/{id}
func (h *EventHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "id")
	if eventID == "" {
		utils.ResponseBadRequest(w, "Event ID is required", nil)
		return
	}

	if err := h.service.DeleteEvent(r.Context(), eventID); err != nil {
		handleServiceError(w, h.log, err, "delete event")
		return
	}

	utils.ResponseSuccess(w, "Event deleted", nil)
}

// RegisterForEvent handles POST /userEvent/register-event/{id}
func (h *EventHandler) RegisterForEvent(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	eventID := chi.URLParam(r, "id")
	if eventID == "" {
		utils.ResponseBadRequest(w, "Event ID is required", nil)
		return
	}

	events, emailSent, err := h.service.RegisterForEvent(r.Context(), eventID, userID.String())
	if err != nil {
		handleServiceError(w, h.log, err, "register for event")
		return
	}

	message := "Registered successfully. Confirmation email sent."
	if !emailSent {
		message = "Registered successfully, but the confirmation email could not be sent."
	}
	utils.ResponseSuccess(w, message, events)
}
