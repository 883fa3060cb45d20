package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActiveBannersAt_PriorityOrder(t *testing.T) {
	// April 12 sits inside both the Ramadan and Eid windows.
	now := time.Date(2026, 4, 12, 12, 0, 0, 0, time.UTC)

	banners := ActiveBannersAt(now)
	require.Len(t, banners, 2)
	assert.Equal(t, "eid-fitr", banners[0].ID)
	assert.Equal(t, "ramadan", banners[1].ID)
}

func TestActiveBannersAt_NoneOutsideWindows(t *testing.T) {
	now := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
	assert.Empty(t, ActiveBannersAt(now))
}

func TestActiveBannersAt_YearWrappingWindow(t *testing.T) {
	// The winter window runs December 15 through January 5.
	ids := func(now time.Time) []string {
		var out []string
		for _, b := range ActiveBannersAt(now) {
			out = append(out, b.ID)
		}
		return out
	}

	assert.Contains(t, ids(time.Date(2026, 12, 20, 12, 0, 0, 0, time.UTC)), "winter")
	assert.Contains(t, ids(time.Date(2027, 1, 3, 12, 0, 0, 0, time.UTC)), "winter")
	assert.NotContains(t, ids(time.Date(2027, 1, 10, 12, 0, 0, 0, time.UTC)), "winter")
}

func TestActiveContentAt_HighestPriorityWins(t *testing.T) {
	// Late March: only the Ramadan bundle is active.
	content := ActiveContentAt(time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC))
	require.NotNil(t, content)
	assert.Equal(t, "ramadan-bundle", content.ID)

	// February: nothing.
	assert.Nil(t, ActiveContentAt(time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)))
}

func TestSeasonalService_UsesInjectedClock(t *testing.T) {
	svc := NewSeasonalServiceWithClock(fixedClock(time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)))

	banners := svc.ActiveBanners()
	require.Len(t, banners, 1)
	assert.Equal(t, "summer", banners[0].ID)

	content := svc.ActiveContent()
	require.NotNil(t, content)
	assert.Equal(t, "summer-bundle", content.ID)
}
