package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Nuray2204/FamilyHub/internal/jobs"
	"github.com/Nuray2204/FamilyHub/internal/models"
	"github.com/Nuray2204/FamilyHub/internal/services"
	"github.com/Nuray2204/FamilyHub/pkg/logger"
)

// AdminHandler exposes the operational surface: catalog seeding, on-demand
// batch generation and the analytics report.
type AdminHandler struct {
	Seed      *services.SeedService
	Generator *jobs.DailyGenerator
	Analytics *services.AnalyticsService
	FamilyID  string
}

func NewAdminHandler(seed *services.SeedService, generator *jobs.DailyGenerator, analytics *services.AnalyticsService, familyID string) *AdminHandler {
	return &AdminHandler{
		Seed:      seed,
		Generator: generator,
		Analytics: analytics,
		FamilyID:  familyID,
	}
}

// POST /admin/seed
func (h *AdminHandler) SeedCatalogHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.Seed.SeedCatalog(r.Context()); err != nil {
		logger.Log.WithError(err).Error("Catalog seeding failed")
		http.Error(w, "Catalog seeding failed", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// POST /admin/generate
// Runs the daily batch immediately. Safe to repeat: users with today's
// record are skipped.
func (h *AdminHandler) RunGenerationHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.Generator.RunDailyGeneration(r.Context()); err != nil {
		http.Error(w, "Generation failed", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GET /admin/analytics?from=2025-03-01&to=2025-03-31
// Range totals plus the per-day series they were summed from.
func (h *AdminHandler) AnalyticsReportHandler(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if to == "" {
		to = time.Now().Format(models.DateKeyFormat)
	}
	if from == "" {
		from = time.Now().AddDate(0, 0, -7).Format(models.DateKeyFormat)
	}

	report, err := h.Analytics.RangeReport(r.Context(), h.FamilyID, from, to)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to build analytics report")
		http.Error(w, "Failed to build analytics report", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}

// POST /admin/analytics/finalize?date=2025-03-15
func (h *AdminHandler) FinalizeDayHandler(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format(models.DateKeyFormat)
	}

	if err := h.Analytics.FinalizeDay(r.Context(), h.FamilyID, date); err != nil {
		http.Error(w, "Failed to finalize day", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
