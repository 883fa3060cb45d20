package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserBadge is one earned badge. Non-seasonal badges key on (user, badge);
// seasonal ones add the year so the badge can be earned again next season.
type UserBadge struct {
	ID               string             `bson:"_id" json:"id"`
	UserID           primitive.ObjectID `bson:"user_id" json:"user_id"`
	BadgeID          string             `bson:"badge_id" json:"badge_id"`
	Name             string             `bson:"name" json:"name"`
	Rarity           string             `bson:"rarity" json:"rarity"`
	Reason           string             `bson:"reason" json:"reason"`
	EarnedAt         time.Time          `bson:"earned_at" json:"earned_at"`
	YearEarned       int                `bson:"year_earned,omitempty" json:"year_earned,omitempty"`
	NotificationSent bool               `bson:"notification_sent" json:"notification_sent"`
}

// UserBadgeID builds the deterministic award document id. yearEarned is 0
// for non-seasonal badges.
func UserBadgeID(userID primitive.ObjectID, badgeID string, yearEarned int) string {
	if yearEarned > 0 {
		return fmt.Sprintf("%s_%s_%d", userID.Hex(), badgeID, yearEarned)
	}
	return userID.Hex() + "_" + badgeID
}

// UserCounters is the per-user counter document badge conditions evaluate
// against. Streak bookkeeping lives here too.
type UserCounters struct {
	ID             string             `bson:"_id" json:"id"` // user id hex
	UserID         primitive.ObjectID `bson:"user_id" json:"user_id"`
	Counters       map[string]int64   `bson:"counters" json:"counters"`
	CurrentStreak  int                `bson:"current_streak" json:"current_streak"`
	LongestStreak  int                `bson:"longest_streak" json:"longest_streak"`
	LastActiveDate string             `bson:"last_active_date,omitempty" json:"last_active_date,omitempty"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updated_at"`
}

// Get returns the named counter value, zero if absent.
func (c *UserCounters) Get(name string) int64 {
	if c == nil || c.Counters == nil {
		return 0
	}
	return c.Counters[name]
}
