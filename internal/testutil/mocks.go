package testutil

import (
	"context"
	"sync"
	"ymc/internal/models"
	"ymc/internal/providers"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// LevelCount returns how many entries were recorded at the given level.
func (m *MockLogger) LevelCount(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.Logs {
		if e.Level == level {
			n++
		}
	}
	return n
}

// MockMonetizationService implements services.MonetizationServiceInterface
// with a scripted response and call recording.
type MockMonetizationService struct {
	mu         sync.Mutex
	CheckCalls []string
	Response   *models.CheckResponse
	Err        error
	Checks     int64
}

func (m *MockMonetizationService) Check(_ context.Context, channelURL string) (*models.CheckResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CheckCalls = append(m.CheckCalls, channelURL)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Response, nil
}

func (m *MockMonetizationService) ChecksPerformed() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Checks
}

// MockCache is an in-memory CacheProviderInterface.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.Data[key]
	return v, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}
