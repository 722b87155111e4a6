package services

import (
	"context"
	"net/url"
	"strings"
	"ymc/internal/providers"
)

// ChannelResolver turns a user-supplied channel URL into a channel id.
// Direct /channel/<id> URLs are extracted verbatim; @handle URLs cost
// one search call; legacy /c/ and /user/ forms are not resolvable
// through the public API surface and are rejected outright.
type ChannelResolver struct {
	client YouTubeClientInterface
	logger providers.Logger
}

func NewChannelResolver(client YouTubeClientInterface, logger providers.Logger) *ChannelResolver {
	return &ChannelResolver{
		client: client,
		logger: logger,
	}
}

func (r *ChannelResolver) Resolve(ctx context.Context, rawURL string) (string, error) {
	if _, err := url.ParseRequestURI(rawURL); err != nil {
		return "", ErrInvalidURL
	}

	var channelID string

	switch {
	case strings.Contains(rawURL, "/channel/"):
		channelID = segmentAfter(rawURL, "/channel/")
	case strings.Contains(rawURL, "@"):
		handle := segmentAfter(rawURL, "@")
		if handle == "" {
			return "", ErrInvalidURL
		}
		id, err := r.client.SearchChannelID(ctx, handle)
		if err != nil {
			return "", err
		}
		channelID = id
	case strings.Contains(rawURL, "/c/"), strings.Contains(rawURL, "/user/"):
		return "", ErrUnsupportedURLFormat
	}

	if channelID == "" {
		return "", ErrInvalidURL
	}

	r.logger.Debugf(providers.TypeApp, "Resolved %s to channel %s", rawURL, channelID)
	return channelID, nil
}

// segmentAfter returns the part of s following the first occurrence of
// marker, up to the next path separator.
func segmentAfter(s, marker string) string {
	_, rest, found := strings.Cut(s, marker)
	if !found {
		return ""
	}
	segment, _, _ := strings.Cut(rest, "/")
	return segment
}
