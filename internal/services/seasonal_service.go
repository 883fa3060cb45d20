package services

import (
	"sort"
	"time"

	"github.com/Nuray2204/FamilyHub/internal/catalog"
)

// SeasonalService derives the currently active banners and content bundle
// purely from the wall-clock date. There is no stored state; everything is
// re-derivable on each call.
type SeasonalService struct {
	clock func() time.Time
}

func NewSeasonalService() *SeasonalService {
	return &SeasonalService{clock: time.Now}
}

// NewSeasonalServiceWithClock is used by tests to pin the calendar.
func NewSeasonalServiceWithClock(clock func() time.Time) *SeasonalService {
	return &SeasonalService{clock: clock}
}

// ActiveBannersAt returns the banners whose windows contain the given
// moment, highest priority first. Equal priorities keep catalog order.
func ActiveBannersAt(now time.Time) []catalog.SeasonalBanner {
	var active []catalog.SeasonalBanner
	for _, banner := range catalog.SeasonalBanners {
		if banner.Window.Contains(now) {
			active = append(active, banner)
		}
	}

	sort.SliceStable(active, func(i, j int) bool {
		return active[i].Priority > active[j].Priority
	})
	return active
}

// ActiveContentAt returns the highest-priority content bundle active at the
// given moment, or nil when no window matches.
func ActiveContentAt(now time.Time) *catalog.SeasonalContent {
	var best *catalog.SeasonalContent
	for i := range catalog.SeasonalContents {
		bundle := &catalog.SeasonalContents[i]
		if !bundle.Window.Contains(now) {
			continue
		}
		if best == nil || bundle.Priority > best.Priority {
			best = bundle
		}
	}
	return best
}

// ActiveBanners returns the banners active right now.
func (s *SeasonalService) ActiveBanners() []catalog.SeasonalBanner {
	return ActiveBannersAt(s.clock())
}

// ActiveContent returns the content bundle active right now, or nil.
func (s *SeasonalService) ActiveContent() *catalog.SeasonalContent {
	return ActiveContentAt(s.clock())
}
