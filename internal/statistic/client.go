package statistic

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/DamienOReilly/reddit-stats/internal/models"
	"github.com/DamienOReilly/reddit-stats/internal/providers"
	"github.com/DamienOReilly/reddit-stats/internal/statistic/interfaces"
	"github.com/DamienOReilly/reddit-stats/internal/structures"
)

// ErrFetchFailed covers every upstream failure: transport errors, timeouts,
// non-2xx statuses and response bodies that do not match the aggs shape.
var ErrFetchFailed = errors.New("failed to retrieve statistics")

// The endpoint returns aggregate buckets only; size=0 suppresses raw items.
const (
	searchPathFormat = "%s/reddit/search/%s"
	aggFrequency     = "month"
)

type timeBucket struct {
	Key      int64 `json:"key"`
	DocCount int64 `json:"doc_count"`
}

type subredditBucket struct {
	Key      string `json:"key"`
	DocCount int64  `json:"doc_count"`
}

type timeAggsResponse struct {
	Aggs struct {
		CreatedUTC []timeBucket `json:"created_utc"`
	} `json:"aggs"`
}

type subredditAggsResponse struct {
	Aggs struct {
		Subreddit []subredditBucket `json:"subreddit"`
	} `json:"aggs"`
}

// PushShiftClient issues read-only aggregation requests against the
// PushShift search API.
type PushShiftClient struct {
	baseURL string
	client  *http.Client
	logger  providers.Logger
	metrics providers.MetricsProviderInterface
}

func NewPushShiftClient(conf *structures.Config, logger providers.Logger, metrics providers.MetricsProviderInterface) interfaces.PushShiftClientInterface {
	return &PushShiftClient{
		baseURL: strings.TrimSuffix(conf.PushShift.BaseURL, "/"),
		client:  &http.Client{Timeout: conf.PushShift.Timeout},
		logger:  logger,
		metrics: metrics,
	}
}

// FetchActivity retrieves one monthly time-bucketed aggregation for a user.
func (c *PushShiftClient) FetchActivity(ctx context.Context, user models.User, content models.ContentType) ([]models.RawCount, error) {
	body, err := c.get(ctx, user, content, models.ByCreated)
	if err != nil {
		return nil, err
	}

	var decoded timeAggsResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("%w: malformed response: %v", ErrFetchFailed, err)
	}

	counts := make([]models.RawCount, 0, len(decoded.Aggs.CreatedUTC))
	for _, b := range decoded.Aggs.CreatedUTC {
		counts = append(counts, models.RawCount{Date: b.Key, Count: b.DocCount})
	}
	return counts, nil
}

// FetchSubreddits retrieves one subreddit-bucketed aggregation for a user.
func (c *PushShiftClient) FetchSubreddits(ctx context.Context, user models.User, content models.ContentType) ([]models.RawCountBySubreddit, error) {
	body, err := c.get(ctx, user, content, models.BySubreddit)
	if err != nil {
		return nil, err
	}

	var decoded subredditAggsResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("%w: malformed response: %v", ErrFetchFailed, err)
	}

	counts := make([]models.RawCountBySubreddit, 0, len(decoded.Aggs.Subreddit))
	for _, b := range decoded.Aggs.Subreddit {
		counts = append(counts, models.RawCountBySubreddit{Subreddit: b.Key, Count: b.DocCount})
	}
	return counts, nil
}

func (c *PushShiftClient) get(ctx context.Context, user models.User, content models.ContentType, dimension models.Dimension) ([]byte, error) {
	q := url.Values{}
	q.Set("author", user.Name)
	q.Set("aggs", dimension.String())
	q.Set("frequency", aggFrequency)
	q.Set("size", "0")
	endpoint := fmt.Sprintf(searchPathFormat, c.baseURL, content.String()) + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.metrics.IncUpstreamRequests(content.String(), dimension.String(), 0)
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	c.metrics.IncUpstreamRequests(content.String(), dimension.String(), resp.StatusCode)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrFetchFailed, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	c.logger.Debugf(providers.TypeApp, "Fetched %s/%s aggregation for %s (%d bytes)",
		content, dimension, user.Name, len(body))
	return body, nil
}
