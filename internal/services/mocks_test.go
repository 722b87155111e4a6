package services

import (
	"context"
	"sync"
	"time"
	"ymc/internal/models"
	"ymc/internal/structures"
)

// mockYouTubeClient scripts the YouTube API surface for service tests
// and records every call.
type mockYouTubeClient struct {
	mu sync.Mutex

	searchResult  string
	searchErr     error
	searchQueries []string

	channels        map[string]*models.Channel
	channelErr      error
	getChannelCalls []string

	pages     map[string]*models.PlaylistPage // keyed by page token, "" for the first page
	pageErr   error
	pageCalls []string

	videos       map[string]models.VideoRecord
	videosErr    error
	videoBatches [][]string
}

func (m *mockYouTubeClient) SearchChannelID(_ context.Context, query string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.searchQueries = append(m.searchQueries, query)
	if m.searchErr != nil {
		return "", m.searchErr
	}
	if m.searchResult == "" {
		return "", ErrChannelNotFound
	}
	return m.searchResult, nil
}

func (m *mockYouTubeClient) GetChannel(_ context.Context, id string) (*models.Channel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getChannelCalls = append(m.getChannelCalls, id)
	if m.channelErr != nil {
		return nil, m.channelErr
	}
	if ch, ok := m.channels[id]; ok {
		return ch, nil
	}
	return nil, ErrChannelNotFound
}

func (m *mockYouTubeClient) ListUploadsPage(_ context.Context, _ string, pageToken string) (*models.PlaylistPage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pageCalls = append(m.pageCalls, pageToken)
	if m.pageErr != nil {
		return nil, m.pageErr
	}
	if page, ok := m.pages[pageToken]; ok {
		return page, nil
	}
	return &models.PlaylistPage{}, nil
}

func (m *mockYouTubeClient) GetVideos(_ context.Context, ids []string) ([]models.VideoRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.videoBatches = append(m.videoBatches, ids)
	if m.videosErr != nil {
		return nil, m.videosErr
	}
	records := make([]models.VideoRecord, 0, len(ids))
	for _, id := range ids {
		if rec, ok := m.videos[id]; ok {
			records = append(records, rec)
		}
	}
	return records, nil
}

// mockMetrics records metric increments relevant to service tests.
type mockMetrics struct {
	mu       sync.Mutex
	apiCalls []string
	outcomes []string
}

func (m *mockMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (m *mockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (m *mockMetrics) IncCacheHits()                                    {}
func (m *mockMetrics) IncCacheMisses()                                  {}
func (m *mockMetrics) IncApiCalls(operation string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.apiCalls = append(m.apiCalls, operation)
}
func (m *mockMetrics) IncChecksTotal(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomes = append(m.outcomes, outcome)
}

func fetcherConfig() *structures.Config {
	return &structures.Config{
		YouTube: structures.YouTubeConfig{
			MaxVideos:  500,
			PageSize:   50,
			WindowDays: 365,
		},
	}
}
