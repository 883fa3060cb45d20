package jobs

import (
	"context"

	"github.com/Nuray2204/FamilyHub/internal/services"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DailyGenerator runs the "generate for all users" batch. Each user's
// generation path is independent; one user's failure is logged and skipped
// so it cannot abort the rest of the family.
type DailyGenerator struct {
	UserService  *services.UserService
	NudgeService *services.NudgeService
	FamilyID     string
}

// NewDailyGenerator creates a new instance of DailyGenerator.
func NewDailyGenerator(userService *services.UserService, nudgeService *services.NudgeService, familyID string) *DailyGenerator {
	return &DailyGenerator{
		UserService:  userService,
		NudgeService: nudgeService,
		FamilyID:     familyID,
	}
}

// RunDailyGeneration generates today's nudge for every allowlisted user.
// Re-running is harmless: users who already have today's record hit the
// idempotent path and are counted as skipped.
func (g *DailyGenerator) RunDailyGeneration(ctx context.Context) error {
	runID := uuid.NewString()
	log := logrus.WithFields(logrus.Fields{"run_id": runID, "family_id": g.FamilyID})

	users, err := g.UserService.GetActiveUsers(ctx, g.FamilyID)
	if err != nil {
		log.WithError(err).Error("Daily generation could not list users")
		return err
	}

	generated, skipped, failed := 0, 0, 0
	for i := range users {
		result, err := g.NudgeService.GetDailyNudge(ctx, &users[i])
		if err != nil {
			failed++
			log.WithError(err).WithField("user_id", users[i].ID.Hex()).Warn("Nudge generation failed for user")
			continue
		}
		if result.Generated {
			generated++
		} else {
			skipped++
		}
	}

	log.WithFields(logrus.Fields{
		"users":     len(users),
		"generated": generated,
		"skipped":   skipped,
		"failed":    failed,
	}).Info("Daily nudge generation completed")
	return nil
}
