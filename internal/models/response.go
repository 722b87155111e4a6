package models

// CheckRequest is the body of POST /api/check-monetization.
type CheckRequest struct {
	ChannelURL string `json:"channelUrl"`
}

type StatisticsReport struct {
	Subscribers          uint64 `json:"subscribers"`
	Views                uint64 `json:"views"`
	Videos               uint64 `json:"videos"`
	EstimatedWatchHours  int64  `json:"estimatedWatchHours"`
	MonthlyViews         uint64 `json:"monthlyViews"`
	WatchHoursNote       string `json:"watchHoursNote"`
	WatchHoursConfidence string `json:"watchHoursConfidence"`
}

type RequirementsReport struct {
	SubscribersNeeded         int64            `json:"subscribersNeeded"`
	WatchHoursNeeded          int64            `json:"watchHoursNeeded"`
	WatchHoursTimeframe       string           `json:"watchHoursTimeframe"`
	VideosNeeded              int64            `json:"videosNeeded"`
	CommunityGuidelinesStatus GuidelinesStatus `json:"communityGuidelinesStatus"`
	HasEnoughVideos           bool             `json:"hasEnoughVideos"`
}

// CheckResponse is the full monetization check result returned to the
// presentation layer. Field names are part of the page contract.
type CheckResponse struct {
	IsMonetized        bool               `json:"isMonetized"`
	Statistics         StatisticsReport   `json:"statistics"`
	Requirements       RequirementsReport `json:"requirements"`
	MonetizationStatus MonetizationStatus `json:"monetizationStatus"`
	Revenue            RevenueEstimate    `json:"revenue"`
}

// ErrorResponse is the JSON error envelope for non-200 statuses.
type ErrorResponse struct {
	Error string `json:"error"`
}
