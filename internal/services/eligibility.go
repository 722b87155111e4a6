package services

import "ymc/internal/models"

// YouTube Partner Program thresholds. Process-wide constants, not
// configuration: the platform defines them, not the operator.
const (
	SubscriberRequirement    = 1000
	WatchHoursRequirement    = 4000
	MinimumVideosRequirement = 3
	PublicVideosRequirement  = 1
)

// EvaluateEligibility compares the channel's counters against the
// monetization thresholds. The public-videos criterion is implied by
// the minimum-videos one under current thresholds but is kept distinct;
// the platform lists it separately.
func EvaluateEligibility(stats models.ChannelStatistics, watchHours int64, guidelinesOK bool) models.MonetizationStatus {
	return models.MonetizationStatus{
		Subscribers:         stats.Subscribers >= SubscriberRequirement,
		WatchHours:          watchHours >= WatchHoursRequirement,
		MinimumVideos:       stats.Videos >= MinimumVideosRequirement,
		CommunityGuidelines: guidelinesOK,
		PublicVideos:        stats.Videos >= PublicVideosRequirement,
	}
}

// neededDelta reports how far current is below threshold, clamped at
// zero once the threshold is met.
func neededDelta(threshold, current int64) int64 {
	if current >= threshold {
		return 0
	}
	return threshold - current
}

// BuildRequirements derives the display-oriented "how much is missing"
// report from the same inputs the evaluation uses.
func BuildRequirements(stats models.ChannelStatistics, watchHours int64, guidelines models.GuidelinesStatus) models.RequirementsReport {
	return models.RequirementsReport{
		SubscribersNeeded:         neededDelta(SubscriberRequirement, int64(stats.Subscribers)),
		WatchHoursNeeded:          neededDelta(WatchHoursRequirement, watchHours),
		WatchHoursTimeframe:       "last 365 days",
		VideosNeeded:              neededDelta(MinimumVideosRequirement, int64(stats.Videos)),
		CommunityGuidelinesStatus: guidelines,
		HasEnoughVideos:           stats.Videos >= MinimumVideosRequirement,
	}
}
