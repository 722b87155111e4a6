package services

import (
	"context"
	"time"
	"ymc/internal/models"
	"ymc/internal/providers"
	"ymc/internal/structures"
)

// VideoHistoryFetcher pages through a channel's uploads playlist,
// keeping videos published within the trailing window and batching one
// statistics lookup per page of survivors. The processed-item ceiling
// bounds API call volume for channels with very long histories, at the
// cost of under-counting their watch hours.
//
// Any failure along the way degrades to an empty, flagged history
// rather than propagating: watch-hour estimation is itself approximate,
// so losing the video data must not fail the whole check.
type VideoHistoryFetcher struct {
	client     YouTubeClientInterface
	logger     providers.Logger
	maxVideos  int
	windowDays int
}

func NewVideoHistoryFetcher(conf *structures.Config, client YouTubeClientInterface, logger providers.Logger) *VideoHistoryFetcher {
	return &VideoHistoryFetcher{
		client:     client,
		logger:     logger,
		maxVideos:  conf.YouTube.MaxVideos,
		windowDays: conf.YouTube.WindowDays,
	}
}

func (f *VideoHistoryFetcher) FetchRecent(ctx context.Context, channelID string) models.VideoHistory {
	channel, err := f.client.GetChannel(ctx, channelID)
	if err != nil {
		f.logger.Errorf(providers.TypeApp, "Error fetching video data: %s", err)
		return models.VideoHistory{Degraded: true}
	}
	if channel.UploadsPlaylistID == "" {
		f.logger.Warnf(providers.TypeApp, "Channel %s has no uploads playlist", channelID)
		return models.VideoHistory{Degraded: true}
	}

	cutoff := time.Now().AddDate(0, 0, -f.windowDays)

	var videos []models.VideoRecord
	pageToken := ""
	processed := 0

	for {
		page, err := f.client.ListUploadsPage(ctx, channel.UploadsPlaylistID, pageToken)
		if err != nil {
			f.logger.Errorf(providers.TypeApp, "Error fetching video data: %s", err)
			return models.VideoHistory{Degraded: true}
		}

		var recentIDs []string
		for _, item := range page.Items {
			if !item.PublishedAt.Before(cutoff) {
				recentIDs = append(recentIDs, item.VideoID)
			}
		}

		if len(recentIDs) > 0 {
			records, err := f.client.GetVideos(ctx, recentIDs)
			if err != nil {
				f.logger.Errorf(providers.TypeApp, "Error fetching video data: %s", err)
				return models.VideoHistory{Degraded: true}
			}
			videos = append(videos, records...)
		}

		processed += len(page.Items)
		pageToken = page.NextPageToken

		if processed >= f.maxVideos || pageToken == "" {
			break
		}
	}

	return models.VideoHistory{Videos: videos}
}
