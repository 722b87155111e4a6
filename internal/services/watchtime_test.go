package services

import (
	"testing"
	"ymc/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestParseDurationMinutes(t *testing.T) {
	tests := []struct {
		name     string
		duration string
		expected float64
	}{
		{"hours minutes seconds", "PT1H2M3S", 62.05},
		{"seconds only", "PT45S", 0.75},
		{"minutes only", "PT10M", 10},
		{"hours only", "PT2H", 120},
		{"zero", "PT0S", 0},
		{"unmatchable", "garbage", 0},
		{"empty", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, ParseDurationMinutes(tt.duration), 1e-9)
		})
	}
}

func TestEstimateWatchHours_NoVideos(t *testing.T) {
	assert.Equal(t, int64(0), EstimateWatchHours(nil))
}

func TestEstimateWatchHours_FloorsToWholeHours(t *testing.T) {
	// 100 views × 10 min × 0.15 × 0.70 = 105 minutes = 1.75 hours
	videos := []models.VideoRecord{{Views: 100, Duration: "PT10M"}}
	assert.Equal(t, int64(1), EstimateWatchHours(videos))
}

func TestEstimateWatchHours_UnparseableDurationContributesZero(t *testing.T) {
	videos := []models.VideoRecord{
		{Views: 1000000, Duration: "not-a-duration"},
		{Views: 100, Duration: "PT10M"},
	}
	assert.Equal(t, int64(1), EstimateWatchHours(videos))
}

func TestEstimateWatchHours_MonotonicInViews(t *testing.T) {
	base := []models.VideoRecord{{Views: 1000, Duration: "PT30M"}}
	more := []models.VideoRecord{{Views: 5000, Duration: "PT30M"}}
	assert.LessOrEqual(t, EstimateWatchHours(base), EstimateWatchHours(more))
}

func TestEstimateWatchHours_MonotonicInDuration(t *testing.T) {
	short := []models.VideoRecord{{Views: 1000, Duration: "PT5M"}}
	long := []models.VideoRecord{{Views: 1000, Duration: "PT1H5M"}}
	assert.LessOrEqual(t, EstimateWatchHours(short), EstimateWatchHours(long))
}

func TestWatchHoursConfidence(t *testing.T) {
	makeVideos := func(n int) []models.VideoRecord {
		videos := make([]models.VideoRecord, n)
		for i := range videos {
			videos[i] = models.VideoRecord{Views: 1, Duration: "PT1M"}
		}
		return videos
	}

	assert.Equal(t, ConfidenceLow, WatchHoursConfidence(nil))
	assert.Equal(t, ConfidenceMedium, WatchHoursConfidence(makeVideos(1)))
	assert.Equal(t, ConfidenceMedium, WatchHoursConfidence(makeVideos(9)))
	assert.Equal(t, ConfidenceHigh, WatchHoursConfidence(makeVideos(10)))
	assert.Equal(t, ConfidenceHigh, WatchHoursConfidence(makeVideos(100)))
}
