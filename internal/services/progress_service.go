package services

import (
	"context"
	"fmt"

	"github.com/Nuray2204/FamilyHub/internal/catalog"
	"github.com/Nuray2204/FamilyHub/internal/models"
	"github.com/Nuray2204/FamilyHub/pkg/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProgressStore is the slice of the progress repository the tracker needs.
type ProgressStore interface {
	GetProgress(ctx context.Context, userIDHex string) (*models.IslamicProgress, error)
	AddAnsweredQuestion(ctx context.Context, userID primitive.ObjectID, questionID, nextQuestionID string) error
}

// ProgressService walks each user through the ordered question bank. The
// walk is monotonic: answered ids are never removed or re-issued, and
// exhausting the bank is a valid end state, not an error.
type ProgressService struct {
	store  ProgressStore
	events *EventService
}

func NewProgressService(store ProgressStore, events *EventService) *ProgressService {
	return &ProgressService{store: store, events: events}
}

// NextQuestionID returns the first catalog question id not yet answered.
// ok is false once the whole bank has been consumed.
func NextQuestionID(answered []string) (string, bool) {
	seen := make(map[string]bool, len(answered))
	for _, id := range answered {
		seen[id] = true
	}
	for _, q := range catalog.Questions {
		if !seen[q.ID] {
			return q.ID, true
		}
	}
	return "", false
}

// GetProgress loads the user's progression, returning an empty document for
// first-time users.
func (s *ProgressService) GetProgress(ctx context.Context, userID primitive.ObjectID) (*models.IslamicProgress, error) {
	progress, err := s.store.GetProgress(ctx, userID.Hex())
	if err != nil {
		return nil, fmt.Errorf("failed to get progress: %v", err)
	}
	if progress == nil {
		progress = &models.IslamicProgress{ID: userID.Hex(), UserID: userID}
	}
	return progress, nil
}

// NextQuestion returns the user's next unanswered question. ok is false when
// all content is consumed; callers show a "completed" state for that.
func (s *ProgressService) NextQuestion(ctx context.Context, userID primitive.ObjectID) (*catalog.Question, bool, error) {
	progress, err := s.GetProgress(ctx, userID)
	if err != nil {
		return nil, false, err
	}

	id, ok := NextQuestionID(progress.AnsweredQuestions)
	if !ok {
		return nil, false, nil
	}
	return catalog.QuestionByID(id), true, nil
}

// CurrentAyah returns the scripture excerpt tied to the user's progression
// state: the next question's ayah when it has one, otherwise the most recent
// answered question's, otherwise the neutral default.
func CurrentAyah(progress *models.IslamicProgress) string {
	if progress != nil {
		if id, ok := NextQuestionID(progress.AnsweredQuestions); ok {
			if q := catalog.QuestionByID(id); q != nil && q.Ayah != "" {
				return q.Ayah
			}
		}
		for i := len(progress.AnsweredQuestions) - 1; i >= 0; i-- {
			if q := catalog.QuestionByID(progress.AnsweredQuestions[i]); q != nil && q.Ayah != "" {
				return q.Ayah
			}
		}
	}
	return catalog.DefaultAyah
}

// AnswerResult is the outcome of answering a question.
type AnswerResult struct {
	Question        *catalog.Question  `json:"question"`
	Correct         bool               `json:"correct"`
	AlreadyAnswered bool               `json:"already_answered"`
	NextQuestionID  string             `json:"next_question_id,omitempty"`
	Completed       bool               `json:"completed"`
	NewBadges       []models.UserBadge `json:"new_badges,omitempty"`
}

// AnswerQuestion records an answer. Re-answering an already-recorded
// question is an idempotent no-op; progress never moves backwards.
func (s *ProgressService) AnswerQuestion(ctx context.Context, userID primitive.ObjectID, familyID, questionID string, choice int) (*AnswerResult, error) {
	question := catalog.QuestionByID(questionID)
	if question == nil {
		return nil, fmt.Errorf("unknown question: %s", questionID)
	}

	progress, err := s.GetProgress(ctx, userID)
	if err != nil {
		return nil, err
	}

	if progress.HasAnswered(questionID) {
		next, ok := NextQuestionID(progress.AnsweredQuestions)
		return &AnswerResult{
			Question:        question,
			AlreadyAnswered: true,
			NextQuestionID:  next,
			Completed:       !ok,
		}, nil
	}

	answered := append(append([]string(nil), progress.AnsweredQuestions...), questionID)
	next, ok := NextQuestionID(answered)

	if err := s.store.AddAnsweredQuestion(ctx, userID, questionID, next); err != nil {
		return nil, fmt.Errorf("failed to save answer: %v", err)
	}

	result := &AnswerResult{
		Question:       question,
		Correct:        choice == question.Answer,
		NextQuestionID: next,
		Completed:      !ok,
	}

	recorded, err := s.events.RecordIslamicAnswer(ctx, userID, familyID, result.Correct)
	if err != nil {
		// The answer itself is saved; metrics and badges catch up later.
		logger.Log.WithError(err).WithField("user_id", userID.Hex()).Warn("Failed to record quiz metrics")
	} else {
		result.NewBadges = recorded.NewBadges
	}

	if result.Completed {
		logger.Log.WithField("user_id", userID.Hex()).Info("Question bank completed")
	}

	return result, nil
}
