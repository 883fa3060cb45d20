package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Nuray2204/FamilyHub/internal/services"
	"github.com/Nuray2204/FamilyHub/pkg/logger"
	"github.com/Nuray2204/FamilyHub/pkg/middleware"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EventHandler ingests engagement events from the apps.
type EventHandler struct {
	Service  *services.EventService
	FamilyID string
}

func NewEventHandler(service *services.EventService, familyID string) *EventHandler {
	return &EventHandler{Service: service, FamilyID: familyID}
}

// POST /events
// Body: {"type": "poll_voted", "value": 1, "target_id": "..."}
// Responds with any badges the event just earned.
func (h *EventHandler) RecordEventHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var payload struct {
		Type     string `json:"type"`
		Value    int    `json:"value"`
		TargetID string `json:"target_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	result, err := h.Service.Record(r.Context(), userID, h.FamilyID, payload.Type, payload.Value, payload.TargetID)
	if err != nil {
		logger.Log.WithError(err).WithField("type", payload.Type).Warn("Failed to record event")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
