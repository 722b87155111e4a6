package services

import (
	"fmt"
	"math"
	"ymc/internal/models"
)

// Revenue rate constants. CPM is what advertisers pay per thousand
// impressions; creators keep the revenue-share fraction of it (the RPM).
// Membership figures are deliberately conservative.
const (
	CpmMin          = 1.0
	CpmMax          = 4.0
	RevenueShare    = 0.55
	MembershipRate  = 0.001
	MembershipPrice = 4.99
)

// ProjectRevenue derives monthly and yearly revenue ranges from the
// channel's lifetime counters. Pure arithmetic, no I/O. Monthly views
// are a coarse lifetime/12 stand-in since the public API only exposes
// lifetime totals.
func ProjectRevenue(stats models.ChannelStatistics) models.RevenueEstimate {
	monthlyViews := stats.Views / 12

	minRPM := CpmMin * RevenueShare
	maxRPM := CpmMax * RevenueShare

	minAdRevenue := float64(monthlyViews) / 1000 * minRPM
	maxAdRevenue := float64(monthlyViews) / 1000 * maxRPM

	estimatedMembers := uint64(math.Floor(float64(stats.Subscribers) * MembershipRate))
	membershipRevenue := float64(estimatedMembers) * MembershipPrice

	totalMin := minAdRevenue + membershipRevenue
	totalMax := maxAdRevenue + membershipRevenue

	return models.RevenueEstimate{
		Monthly: models.MonthlyRevenue{
			MinRevenue: int64(math.Round(totalMin)),
			MaxRevenue: int64(math.Round(totalMax)),
			AdRevenue: models.AdRevenueRange{
				Min: int64(math.Round(minAdRevenue)),
				Max: int64(math.Round(maxAdRevenue)),
			},
			Memberships: int64(math.Round(membershipRevenue)),
		},
		Yearly: models.YearlyRevenue{
			MinRevenue: int64(math.Round(totalMin * 12)),
			MaxRevenue: int64(math.Round(totalMax * 12)),
		},
		Metrics: models.RevenueMetrics{
			MonthlyViews:     monthlyViews,
			EstimatedMembers: estimatedMembers,
			RPM: models.RPMRange{
				Min: fmt.Sprintf("%.2f", minRPM),
				Max: fmt.Sprintf("%.2f", maxRPM),
			},
		},
	}
}
