package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Nuray2204/FamilyHub/internal/services"
	"github.com/Nuray2204/FamilyHub/pkg/logger"
	"github.com/Nuray2204/FamilyHub/pkg/middleware"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NudgeHandler serves the daily nudge and its history.
type NudgeHandler struct {
	NudgeService *services.NudgeService
	UserService  *services.UserService
}

func NewNudgeHandler(nudgeService *services.NudgeService, userService *services.UserService) *NudgeHandler {
	return &NudgeHandler{
		NudgeService: nudgeService,
		UserService:  userService,
	}
}

// GET /nudges/today
// Returns today's nudge for the caller, generating it on first request.
// Repeat calls on the same day return the same record.
func (h *NudgeHandler) GetDailyNudgeHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	user, err := h.UserService.GetUser(r.Context(), claims.UserID)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to load user for nudge generation")
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	result, err := h.NudgeService.GetDailyNudge(r.Context(), user)
	if err != nil {
		logger.Log.WithError(err).WithField("user_id", claims.UserID).Error("Failed to get daily nudge")
		http.Error(w, "Failed to get daily nudge", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// GET /nudges/history?limit=30
func (h *NudgeHandler) GetHistoryHandler(w http.ResponseWriter, r *http.Request) {
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

	limit, _ := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)

	records, err := h.NudgeService.GetHistory(r.Context(), userID, limit)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to fetch nudge history")
		http.Error(w, "Failed to fetch nudge history", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(records)
}
