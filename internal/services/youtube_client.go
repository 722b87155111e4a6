package services

import (
	"context"
	"time"
	"ymc/internal/models"
	"ymc/internal/providers"
	"ymc/internal/structures"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// YouTubeClientInterface is the consumed surface of the YouTube Data
// API: channel search, channel lookup, uploads playlist paging and
// batched video lookup. Everything behind it is a black-box
// request/response call.
type YouTubeClientInterface interface {
	SearchChannelID(ctx context.Context, query string) (string, error)
	GetChannel(ctx context.Context, id string) (*models.Channel, error)
	ListUploadsPage(ctx context.Context, playlistID, pageToken string) (*models.PlaylistPage, error)
	GetVideos(ctx context.Context, ids []string) ([]models.VideoRecord, error)
}

type YouTubeClient struct {
	svc      *youtube.Service
	logger   providers.Logger
	metrics  providers.MetricsProviderInterface
	pageSize int64
}

func NewYouTubeClient(conf *structures.Config, logger providers.Logger, metrics providers.MetricsProviderInterface) (YouTubeClientInterface, error) {
	svc, err := youtube.NewService(context.Background(), option.WithAPIKey(conf.YouTube.ApiKey))
	if err != nil {
		return nil, err
	}

	return &YouTubeClient{
		svc:      svc,
		logger:   logger,
		metrics:  metrics,
		pageSize: conf.YouTube.PageSize,
	}, nil
}

// SearchChannelID resolves a free-text query (a handle) to the first
// matching channel identifier.
func (c *YouTubeClient) SearchChannelID(ctx context.Context, query string) (string, error) {
	c.metrics.IncApiCalls("search")
	resp, err := c.svc.Search.List([]string{"snippet"}).
		Q(query).
		Type("channel").
		MaxResults(1).
		Context(ctx).
		Do()
	if err != nil {
		return "", &ApiError{Op: "search", Err: err}
	}

	if len(resp.Items) == 0 || resp.Items[0].Snippet == nil {
		return "", ErrChannelNotFound
	}
	return resp.Items[0].Snippet.ChannelId, nil
}

// GetChannel fetches a channel's statistics, status and content details
// in one call. Returns ErrChannelNotFound when the id resolves to
// nothing.
func (c *YouTubeClient) GetChannel(ctx context.Context, id string) (*models.Channel, error) {
	c.metrics.IncApiCalls("channels")
	resp, err := c.svc.Channels.List([]string{"statistics", "status", "contentDetails"}).
		Id(id).
		Context(ctx).
		Do()
	if err != nil {
		return nil, &ApiError{Op: "channels", Err: err}
	}

	if len(resp.Items) == 0 {
		return nil, ErrChannelNotFound
	}

	item := resp.Items[0]
	channel := &models.Channel{ID: id}
	if item.Statistics != nil {
		channel.Statistics = models.ChannelStatistics{
			Subscribers: item.Statistics.SubscriberCount,
			Views:       item.Statistics.ViewCount,
			Videos:      item.Statistics.VideoCount,
		}
	}
	if item.ContentDetails != nil && item.ContentDetails.RelatedPlaylists != nil {
		channel.UploadsPlaylistID = item.ContentDetails.RelatedPlaylists.Uploads
	}
	return channel, nil
}

// ListUploadsPage fetches one page of an uploads playlist. Items whose
// publish timestamp fails to parse keep a zero time and fall out of any
// recency window downstream.
func (c *YouTubeClient) ListUploadsPage(ctx context.Context, playlistID, pageToken string) (*models.PlaylistPage, error) {
	c.metrics.IncApiCalls("playlistItems")
	call := c.svc.PlaylistItems.List([]string{"contentDetails", "snippet"}).
		PlaylistId(playlistID).
		MaxResults(c.pageSize).
		Context(ctx)
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}
	resp, err := call.Do()
	if err != nil {
		return nil, &ApiError{Op: "playlistItems", Err: err}
	}

	page := &models.PlaylistPage{NextPageToken: resp.NextPageToken}
	for _, item := range resp.Items {
		if item.ContentDetails == nil || item.Snippet == nil {
			continue
		}
		publishedAt, err := time.Parse(time.RFC3339, item.Snippet.PublishedAt)
		if err != nil {
			c.logger.Warnf(providers.TypeApp, "Unparseable publish timestamp %q for video %s", item.Snippet.PublishedAt, item.ContentDetails.VideoId)
		}
		page.Items = append(page.Items, models.PlaylistItem{
			VideoID:     item.ContentDetails.VideoId,
			PublishedAt: publishedAt,
		})
	}
	return page, nil
}

// GetVideos batch-fetches statistics and durations for up to one page
// of video ids.
func (c *YouTubeClient) GetVideos(ctx context.Context, ids []string) ([]models.VideoRecord, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	c.metrics.IncApiCalls("videos")
	resp, err := c.svc.Videos.List([]string{"statistics", "contentDetails"}).
		Id(ids...).
		Context(ctx).
		Do()
	if err != nil {
		return nil, &ApiError{Op: "videos", Err: err}
	}

	records := make([]models.VideoRecord, 0, len(resp.Items))
	for _, item := range resp.Items {
		record := models.VideoRecord{ID: item.Id}
		if item.Statistics != nil {
			record.Views = item.Statistics.ViewCount
		}
		if item.ContentDetails != nil {
			record.Duration = item.ContentDetails.Duration
		}
		records = append(records, record)
	}
	return records, nil
}
