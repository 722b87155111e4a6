package services

import (
	"testing"
	"ymc/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestProjectRevenue_MonthlyViewsIsLifetimeOverTwelve(t *testing.T) {
	estimate := ProjectRevenue(models.ChannelStatistics{Views: 1200000})
	assert.Equal(t, uint64(100000), estimate.Metrics.MonthlyViews)
}

func TestProjectRevenue_MonthlyViewsFloored(t *testing.T) {
	estimate := ProjectRevenue(models.ChannelStatistics{Views: 13})
	assert.Equal(t, uint64(1), estimate.Metrics.MonthlyViews)
}

func TestProjectRevenue_ExactFigures(t *testing.T) {
	stats := models.ChannelStatistics{Subscribers: 10000, Views: 1200000}
	estimate := ProjectRevenue(stats)

	// monthlyViews = 100000; RPM 0.55–2.20
	// ad revenue: 100 × 0.55 = 55, 100 × 2.20 = 220
	// members: floor(10000 × 0.001) = 10; memberships 10 × 4.99 = 49.90
	assert.Equal(t, int64(55), estimate.Monthly.AdRevenue.Min)
	assert.Equal(t, int64(220), estimate.Monthly.AdRevenue.Max)
	assert.Equal(t, uint64(10), estimate.Metrics.EstimatedMembers)
	assert.Equal(t, int64(50), estimate.Monthly.Memberships)
	assert.Equal(t, int64(105), estimate.Monthly.MinRevenue)
	assert.Equal(t, int64(270), estimate.Monthly.MaxRevenue)
	assert.Equal(t, int64(1259), estimate.Yearly.MinRevenue)
	assert.Equal(t, int64(3239), estimate.Yearly.MaxRevenue)
}

func TestProjectRevenue_RPMRendering(t *testing.T) {
	estimate := ProjectRevenue(models.ChannelStatistics{})
	assert.Equal(t, "0.55", estimate.Metrics.RPM.Min)
	assert.Equal(t, "2.20", estimate.Metrics.RPM.Max)
}

func TestProjectRevenue_BoundsOrdered(t *testing.T) {
	cases := []models.ChannelStatistics{
		{},
		{Subscribers: 1, Views: 1},
		{Subscribers: 500, Views: 120000},
		{Subscribers: 2500000, Views: 900000000},
	}
	for _, stats := range cases {
		estimate := ProjectRevenue(stats)
		assert.LessOrEqual(t, estimate.Monthly.AdRevenue.Min, estimate.Monthly.AdRevenue.Max)
		assert.LessOrEqual(t, estimate.Monthly.MinRevenue, estimate.Monthly.MaxRevenue)
		assert.LessOrEqual(t, estimate.Yearly.MinRevenue, estimate.Yearly.MaxRevenue)
	}
}

func TestProjectRevenue_ZeroChannel(t *testing.T) {
	estimate := ProjectRevenue(models.ChannelStatistics{})

	assert.Equal(t, uint64(0), estimate.Metrics.MonthlyViews)
	assert.Equal(t, uint64(0), estimate.Metrics.EstimatedMembers)
	assert.Equal(t, int64(0), estimate.Monthly.MinRevenue)
	assert.Equal(t, int64(0), estimate.Yearly.MaxRevenue)
}
