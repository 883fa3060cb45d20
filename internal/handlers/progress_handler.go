package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Nuray2204/FamilyHub/internal/services"
	"github.com/Nuray2204/FamilyHub/pkg/logger"
	"github.com/Nuray2204/FamilyHub/pkg/middleware"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProgressHandler serves the progressive Islamic quiz.
type ProgressHandler struct {
	Service  *services.ProgressService
	FamilyID string
}

func NewProgressHandler(service *services.ProgressService, familyID string) *ProgressHandler {
	return &ProgressHandler{Service: service, FamilyID: familyID}
}

// GET /quiz/next
// Returns the caller's next unanswered question, or a completed marker once
// the whole bank is consumed.
func (h *ProgressHandler) NextQuestionHandler(w http.ResponseWriter, r *http.Request) {
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

	question, ok, err := h.Service.NextQuestion(r.Context(), userID)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to fetch next question")
		http.Error(w, "Failed to fetch next question", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if !ok {
		// All content consumed is a valid end state, not an error.
		json.NewEncoder(w).Encode(map[string]interface{}{"completed": true})
		return
	}
	json.NewEncoder(w).Encode(map[string]interface{}{"completed": false, "question": question})
}

// POST /quiz/answer
// Body: {"question_id": "allah-3", "choice": 1}
func (h *ProgressHandler) AnswerQuestionHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var payload struct {
		QuestionID string `json:"question_id"`
		Choice     int    `json:"choice"`
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

	result, err := h.Service.AnswerQuestion(r.Context(), userID, h.FamilyID, payload.QuestionID, payload.Choice)
	if err != nil {
		logger.Log.WithError(err).Warn("Failed to answer question")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
