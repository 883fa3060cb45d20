package cron

import (
	"context"
	"time"

	"github.com/Nuray2204/FamilyHub/internal/jobs"
	"github.com/Nuray2204/FamilyHub/internal/models"
	"github.com/Nuray2204/FamilyHub/internal/services"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// StartDailyCronJobs wires the smart engine's schedule: nudge generation
// shortly after midnight, and hourly analytics finalization so the day's
// engagement rate stays current.
func StartDailyCronJobs(generator *jobs.DailyGenerator, analyticsService *services.AnalyticsService, familyID string) {
	c := cron.New()

	// Generate everyone's nudge for the new day.
	c.AddFunc("5 0 * * *", func() {
		if err := generator.RunDailyGeneration(context.Background()); err != nil {
			logrus.WithError(err).Error("RunDailyGeneration failed")
		}
	})

	// Close out yesterday once its last events have settled.
	c.AddFunc("15 0 * * *", func() {
		yesterday := time.Now().AddDate(0, 0, -1).Format(models.DateKeyFormat)
		if err := analyticsService.FinalizeDay(context.Background(), familyID, yesterday); err != nil {
			logrus.WithError(err).Error("FinalizeDay failed for yesterday")
		}
	})

	// Keep today's family rate fresh for the reporting surface.
	c.AddFunc("@hourly", func() {
		today := time.Now().Format(models.DateKeyFormat)
		if err := analyticsService.FinalizeDay(context.Background(), familyID, today); err != nil {
			logrus.WithError(err).Error("FinalizeDay failed for today")
		}
	})

	c.Start()
}
