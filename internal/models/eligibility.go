package models

// MonetizationStatus carries the per-criterion verdicts of the
// eligibility evaluation.
type MonetizationStatus struct {
	Subscribers         bool `json:"subscribers"`
	WatchHours          bool `json:"watchHours"`
	MinimumVideos       bool `json:"minimumVideos"`
	CommunityGuidelines bool `json:"communityGuidelines"`
	PublicVideos        bool `json:"publicVideos"`
}

// AllMet reports whether every criterion passed.
func (s MonetizationStatus) AllMet() bool {
	return s.Subscribers && s.WatchHours && s.MinimumVideos && s.CommunityGuidelines && s.PublicVideos
}
