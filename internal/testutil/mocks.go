package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/DamienOReilly/reddit-stats/internal/models"
	"github.com/DamienOReilly/reddit-stats/internal/providers"
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

// MockStatisticService implements services.StatisticServiceInterface with
// injectable behavior per method.
type MockStatisticService struct {
	FetchFn  func(ctx context.Context, user models.User) (*models.SnapshotResult, error)
	EncodeFn func(res *models.SnapshotResult) (string, error)
	DecodeFn func(payload string) (*models.SnapshotResult, error)

	mu          sync.Mutex
	FetchCalls  []models.User
	DecodeCalls []string
}

func (m *MockStatisticService) FetchUserStats(ctx context.Context, user models.User) (*models.SnapshotResult, error) {
	m.mu.Lock()
	m.FetchCalls = append(m.FetchCalls, user)
	m.mu.Unlock()
	if m.FetchFn != nil {
		return m.FetchFn(ctx, user)
	}
	return nil, nil
}

func (m *MockStatisticService) EncodeSnapshot(res *models.SnapshotResult) (string, error) {
	if m.EncodeFn != nil {
		return m.EncodeFn(res)
	}
	return "", nil
}

func (m *MockStatisticService) DecodeSnapshot(payload string) (*models.SnapshotResult, error) {
	m.mu.Lock()
	m.DecodeCalls = append(m.DecodeCalls, payload)
	m.mu.Unlock()
	if m.DecodeFn != nil {
		return m.DecodeFn(payload)
	}
	return nil, nil
}

// MockCache implements providers.CacheProviderInterface.
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
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

// MockCompressor implements interfaces.CompressorInterface with injectable behavior.
type MockCompressor struct {
	CompressFn   func([]byte) ([]byte, error)
	DecompressFn func([]byte) ([]byte, error)
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressFn != nil {
		return m.CompressFn(val)
	}
	// Default: return as-is (identity)
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressFn != nil {
		return m.DecompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

// MockPushShiftClient implements interfaces.PushShiftClientInterface.
type MockPushShiftClient struct {
	ActivityFn   func(ctx context.Context, user models.User, content models.ContentType) ([]models.RawCount, error)
	SubredditsFn func(ctx context.Context, user models.User, content models.ContentType) ([]models.RawCountBySubreddit, error)
}

func (m *MockPushShiftClient) FetchActivity(ctx context.Context, user models.User, content models.ContentType) ([]models.RawCount, error) {
	if m.ActivityFn != nil {
		return m.ActivityFn(ctx, user, content)
	}
	return []models.RawCount{}, nil
}

func (m *MockPushShiftClient) FetchSubreddits(ctx context.Context, user models.User, content models.ContentType) ([]models.RawCountBySubreddit, error) {
	if m.SubredditsFn != nil {
		return m.SubredditsFn(ctx, user, content)
	}
	return []models.RawCountBySubreddit{}, nil
}

// MockMetrics implements providers.MetricsProviderInterface and counts calls.
type MockMetrics struct {
	mu                     sync.Mutex
	Requests               int
	CacheHits              int
	CacheMisses            int
	UpstreamRequests       int
	FetchObservations      int
	SnapshotDecodeFailures int
}

func (m *MockMetrics) IncRequestsTotal(_ string, _ int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests++
}

func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}

func (m *MockMetrics) IncCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits++
}

func (m *MockMetrics) IncCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMisses++
}

func (m *MockMetrics) IncUpstreamRequests(_, _ string, _ int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpstreamRequests++
}

func (m *MockMetrics) ObserveFetchDuration(_ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FetchObservations++
}

func (m *MockMetrics) IncSnapshotDecodeFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SnapshotDecodeFailures++
}
