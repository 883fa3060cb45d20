package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DateKeyFormat is the calendar-day key shared by nudge records and daily
// analytics documents.
const DateKeyFormat = "2006-01-02"

// UserTraitState tracks which personalization trait is active for a user.
// The index advances one step per full elapsed week.
type UserTraitState struct {
	ID                   string             `bson:"_id" json:"id"` // user id hex
	UserID               primitive.ObjectID `bson:"user_id" json:"user_id"`
	Traits               []string           `bson:"traits" json:"traits"`
	CurrentRotationIndex int                `bson:"current_rotation_index" json:"current_rotation_index"`
	LastRotationDate     time.Time          `bson:"last_rotation_date" json:"last_rotation_date"`
	UpdatedAt            time.Time          `bson:"updated_at" json:"updated_at"`
}

// NudgeRecord is the single daily message generated for a user. Its ID is
// deterministic (user + date), which is what makes generation idempotent:
// a second attempt for the same day collides instead of duplicating.
type NudgeRecord struct {
	ID            string             `bson:"_id" json:"id"` // "<userHex>_<YYYY-MM-DD>"
	UserID        primitive.ObjectID `bson:"user_id" json:"user_id"`
	Date          string             `bson:"date" json:"date"`
	TemplateID    string             `bson:"template_id" json:"template_id"`
	Type          string             `bson:"type" json:"type"`
	GeneratedText string             `bson:"generated_text" json:"generated_text"`
	Character     string             `bson:"character,omitempty" json:"character,omitempty"`
	TraitsUsed    []string           `bson:"traits_used,omitempty" json:"traits_used,omitempty"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
}

// NudgeRecordID builds the deterministic per-user per-day document id.
func NudgeRecordID(userID primitive.ObjectID, date string) string {
	return userID.Hex() + "_" + date
}
