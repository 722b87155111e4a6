package services

import (
	"context"
	"errors"
	"ymc/internal/models"
	"ymc/internal/providers"

	"go.uber.org/atomic"
)

const (
	watchHoursNote         = "Estimated public watch hours in the last 365 days"
	watchHoursNoteDegraded = "Estimated public watch hours in the last 365 days (video history unavailable, estimate degraded)"
)

type MonetizationServiceInterface interface {
	Check(ctx context.Context, channelURL string) (*models.CheckResponse, error)
	ChecksPerformed() int64
}

// MonetizationService runs the full check for one channel: resolve the
// URL, look up the channel, fetch its recent video history, estimate
// watch hours, check guidelines standing, evaluate eligibility and
// project revenue. Each request is strictly sequential; every stage
// consumes the previous one's output.
type MonetizationService struct {
	client   YouTubeClientInterface
	resolver *ChannelResolver
	fetcher  *VideoHistoryFetcher
	logger   providers.Logger
	metrics  providers.MetricsProviderInterface
	checks   atomic.Int64
}

func NewMonetizationService(client YouTubeClientInterface, resolver *ChannelResolver, fetcher *VideoHistoryFetcher, logger providers.Logger, metrics providers.MetricsProviderInterface) MonetizationServiceInterface {
	return &MonetizationService{
		client:   client,
		resolver: resolver,
		fetcher:  fetcher,
		logger:   logger,
		metrics:  metrics,
	}
}

func (s *MonetizationService) Check(ctx context.Context, channelURL string) (*models.CheckResponse, error) {
	channelID, err := s.resolver.Resolve(ctx, channelURL)
	if err != nil {
		s.metrics.IncChecksTotal("error")
		return nil, err
	}

	channel, err := s.client.GetChannel(ctx, channelID)
	if err != nil {
		s.metrics.IncChecksTotal("error")
		return nil, err
	}
	stats := channel.Statistics

	history := s.fetcher.FetchRecent(ctx, channelID)
	estimatedWatchHours := EstimateWatchHours(history.Videos)
	confidence := WatchHoursConfidence(history.Videos)

	guidelines := s.checkCommunityGuidelines(ctx, channelID)

	status := EvaluateEligibility(stats, estimatedWatchHours, guidelines.IsGood)
	isMonetized := status.AllMet()

	revenue := ProjectRevenue(stats)

	note := watchHoursNote
	if history.Degraded {
		note = watchHoursNoteDegraded
	}

	s.checks.Inc()
	if isMonetized {
		s.metrics.IncChecksTotal("monetized")
	} else {
		s.metrics.IncChecksTotal("not_monetized")
	}
	s.logger.Infof(providers.TypeApp, "Checked channel %s: monetized=%t watchHours=%d confidence=%s", channelID, isMonetized, estimatedWatchHours, confidence)

	return &models.CheckResponse{
		IsMonetized: isMonetized,
		Statistics: models.StatisticsReport{
			Subscribers:          stats.Subscribers,
			Views:                stats.Views,
			Videos:               stats.Videos,
			EstimatedWatchHours:  estimatedWatchHours,
			MonthlyViews:         revenue.Metrics.MonthlyViews,
			WatchHoursNote:       note,
			WatchHoursConfidence: confidence,
		},
		Requirements:       BuildRequirements(stats, estimatedWatchHours, guidelines),
		MonetizationStatus: status,
		Revenue:            revenue,
	}, nil
}

// checkCommunityGuidelines approximates the channel's guidelines
// standing. Strike data is only visible to channel owners, so the best
// available signal is whether the channel record is reachable at all.
func (s *MonetizationService) checkCommunityGuidelines(ctx context.Context, channelID string) models.GuidelinesStatus {
	_, err := s.client.GetChannel(ctx, channelID)
	if err != nil {
		if errors.Is(err, ErrChannelNotFound) {
			return models.GuidelinesStatus{
				IsGood:  false,
				Message: "Unable to verify community guidelines status",
			}
		}
		s.logger.Errorf(providers.TypeApp, "Error checking community guidelines: %s", err)
		return models.GuidelinesStatus{
			IsGood:  false,
			Message: "Error checking community guidelines status",
		}
	}
	return models.GuidelinesStatus{
		IsGood:  true,
		Message: "No detected community guidelines violations",
	}
}

func (s *MonetizationService) ChecksPerformed() int64 {
	return s.checks.Load()
}
