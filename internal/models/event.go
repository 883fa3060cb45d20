package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Engagement event types accepted by the events endpoint.
const (
	EventNudgeAnswered = "nudge_answered"
	EventNudgeSkipped  = "nudge_skipped"
	EventPollCreated   = "poll_created"
	EventPollVoted     = "poll_voted"
	EventStoryRead     = "story_read"
	EventFeedbackSent  = "feedback_sent"
	EventLogin         = "login"
	EventSessionTime   = "session_time"
)

// EngagementEvent is the raw log entry behind every counter increment.
type EngagementEvent struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	FamilyID  string             `bson:"family_id" json:"family_id"`
	Type      string             `bson:"type" json:"type"`
	Value     int                `bson:"value,omitempty" json:"value,omitempty"` // minutes for session_time
	TargetID  string             `bson:"target_id,omitempty" json:"target_id,omitempty"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}
