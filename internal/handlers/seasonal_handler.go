package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Nuray2204/FamilyHub/internal/services"
)

// SeasonalHandler serves the date-derived banners and content bundle.
type SeasonalHandler struct {
	Service *services.SeasonalService
}

func NewSeasonalHandler(service *services.SeasonalService) *SeasonalHandler {
	return &SeasonalHandler{Service: service}
}

// GET /seasonal/banners
func (h *SeasonalHandler) GetBannersHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.Service.ActiveBanners())
}

// GET /seasonal/content
func (h *SeasonalHandler) GetContentHandler(w http.ResponseWriter, r *http.Request) {
	content := h.Service.ActiveContent()

	w.Header().Set("Content-Type", "application/json")
	if content == nil {
		json.NewEncoder(w).Encode(map[string]interface{}{"active": false})
		return
	}
	json.NewEncoder(w).Encode(map[string]interface{}{"active": true, "content": content})
}
