package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Nuray2204/FamilyHub/internal/services"
	"github.com/Nuray2204/FamilyHub/pkg/logger"
	"github.com/Nuray2204/FamilyHub/pkg/middleware"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BadgeHandler serves earned badges.
type BadgeHandler struct {
	Service *services.BadgeService
}

func NewBadgeHandler(service *services.BadgeService) *BadgeHandler {
	return &BadgeHandler{Service: service}
}

// GET /badges
func (h *BadgeHandler) GetBadgesHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	badges, err := h.Service.GetUserBadges(r.Context(), userID)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to fetch badges")
		http.Error(w, "Failed to fetch badges", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(badges)
}

// POST /badges/{id}/seen
// Marks an award's notification as shown.
func (h *BadgeHandler) MarkSeenHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	awardID := mux.Vars(r)["id"]
	if err := h.Service.MarkNotified(r.Context(), userID, awardID); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
