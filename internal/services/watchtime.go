package services

import (
	"math"
	"regexp"
	"strconv"
	"ymc/internal/models"
)

// Watch-hours are estimated, never exact: the public API exposes view
// counts and durations but not retention. The factors below assume the
// average viewer watches 15% of a video, further reduced by 30% for
// platform effects (mobile views, embeds, retention patterns).
const (
	averageViewPercentage    = 0.15
	platformAdjustmentFactor = 0.70
)

const (
	ConfidenceLow    = "low"
	ConfidenceMedium = "medium"
	ConfidenceHigh   = "high"
)

var durationPattern = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

// ParseDurationMinutes converts an ISO-8601 style duration ("PT1H2M3S")
// to fractional minutes. Unmatchable strings parse to zero; a bad
// duration must not abort the whole estimate.
func ParseDurationMinutes(duration string) float64 {
	matches := durationPattern.FindStringSubmatch(duration)
	if matches == nil {
		return 0
	}

	hours := atoiOrZero(matches[1])
	minutes := atoiOrZero(matches[2])
	seconds := atoiOrZero(matches[3])

	return float64(hours)*60 + float64(minutes) + float64(seconds)/60
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// EstimateWatchHours converts the fetched video records into total
// estimated watch-hours, floored to whole hours.
func EstimateWatchHours(videos []models.VideoRecord) int64 {
	totalMinutes := 0.0
	for _, video := range videos {
		minutes := ParseDurationMinutes(video.Duration)
		totalMinutes += float64(video.Views) * minutes * averageViewPercentage * platformAdjustmentFactor
	}
	return int64(math.Floor(totalMinutes / 60))
}

// WatchHoursConfidence labels how trustworthy the estimate is, based on
// how many videos contributed. Advisory only; it never affects the
// eligibility decision.
func WatchHoursConfidence(videos []models.VideoRecord) string {
	switch {
	case len(videos) == 0:
		return ConfidenceLow
	case len(videos) < 10:
		return ConfidenceMedium
	default:
		return ConfidenceHigh
	}
}
