package models

type AdRevenueRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

type MonthlyRevenue struct {
	MinRevenue  int64          `json:"minRevenue"`
	MaxRevenue  int64          `json:"maxRevenue"`
	AdRevenue   AdRevenueRange `json:"adRevenue"`
	Memberships int64          `json:"memberships"`
}

type YearlyRevenue struct {
	MinRevenue int64 `json:"minRevenue"`
	MaxRevenue int64 `json:"maxRevenue"`
}

// RPMRange is rendered with two decimals, matching the presentation
// layer's expectations.
type RPMRange struct {
	Min string `json:"min"`
	Max string `json:"max"`
}

type RevenueMetrics struct {
	MonthlyViews     uint64   `json:"monthlyViews"`
	EstimatedMembers uint64   `json:"estimatedMembers"`
	RPM              RPMRange `json:"rpm"`
}

// RevenueEstimate is the projected revenue of a channel, derived purely
// from its public counters and fixed rate constants.
type RevenueEstimate struct {
	Monthly MonthlyRevenue `json:"monthly"`
	Yearly  YearlyRevenue  `json:"yearly"`
	Metrics RevenueMetrics `json:"metrics"`
}
