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

// StoryHandler serves the story shelf.
type StoryHandler struct {
	Service  *services.StoryService
	FamilyID string
}

func NewStoryHandler(service *services.StoryService, familyID string) *StoryHandler {
	return &StoryHandler{Service: service, FamilyID: familyID}
}

// GET /stories
func (h *StoryHandler) GetStoriesHandler(w http.ResponseWriter, r *http.Request) {
	stories, err := h.Service.GetStories(r.Context())
	if err != nil {
		logger.Log.WithError(err).Error("Failed to fetch stories")
		http.Error(w, "Failed to fetch stories", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stories)
}

// POST /stories/{id}/read
// Records a finished story and returns any badges it earned.
func (h *StoryHandler) MarkReadHandler(w http.ResponseWriter, r *http.Request) {
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

	storyID := mux.Vars(r)["id"]
	result, err := h.Service.MarkRead(r.Context(), userID, h.FamilyID, storyID)
	if err != nil {
		logger.Log.WithError(err).WithField("story_id", storyID).Warn("Failed to mark story read")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
