package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IslamicProgress tracks a user's walk through the ordered question bank.
// AnsweredQuestions only ever grows; once every id is present the walk is
// complete and that is a valid end state.
type IslamicProgress struct {
	ID                string             `bson:"_id" json:"id"` // user id hex
	UserID            primitive.ObjectID `bson:"user_id" json:"user_id"`
	AnsweredQuestions []string           `bson:"answered_questions" json:"answered_questions"`
	CurrentQuestionID string             `bson:"current_question_id,omitempty" json:"current_question_id,omitempty"`
	UpdatedAt         time.Time          `bson:"updated_at" json:"updated_at"`
}

// HasAnswered reports whether the question id is already recorded.
func (p *IslamicProgress) HasAnswered(questionID string) bool {
	for _, id := range p.AnsweredQuestions {
		if id == questionID {
			return true
		}
	}
	return false
}
