package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/DamienOReilly/reddit-stats/internal/models"
	"github.com/DamienOReilly/reddit-stats/internal/providers"
	"github.com/DamienOReilly/reddit-stats/internal/statistic"
	"github.com/DamienOReilly/reddit-stats/internal/statistic/interfaces"
)

type StatisticServiceInterface interface {
	FetchUserStats(ctx context.Context, user models.User) (*models.SnapshotResult, error)
	EncodeSnapshot(res *models.SnapshotResult) (string, error)
	DecodeSnapshot(payload string) (*models.SnapshotResult, error)
}

// StatisticService runs one statistics cycle per call: four concurrent
// upstream aggregations joined all-or-nothing, then pure aggregation into
// the six chart series. Runs are stateless and independent of each other.
type StatisticService struct {
	client  interfaces.PushShiftClientInterface
	codec   interfaces.SnapshotCodecInterface
	logger  providers.Logger
	metrics providers.MetricsProviderInterface
}

func NewStatisticService(client interfaces.PushShiftClientInterface, codec interfaces.SnapshotCodecInterface, logger providers.Logger, metrics providers.MetricsProviderInterface) StatisticServiceInterface {
	return &StatisticService{
		client:  client,
		codec:   codec,
		logger:  logger,
		metrics: metrics,
	}
}

func (ss *StatisticService) FetchUserStats(ctx context.Context, user models.User) (*models.SnapshotResult, error) {
	// One timestamp for the whole run; all four result sets share it.
	timestamp := time.Now().UnixMilli()
	start := time.Now()

	var (
		commentActivity      []models.RawCount
		submissionActivity   []models.RawCount
		commentSubreddits    []models.RawCountBySubreddit
		submissionSubreddits []models.RawCountBySubreddit
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		commentActivity, err = ss.client.FetchActivity(gCtx, user, models.ContentComment)
		return err
	})
	g.Go(func() error {
		var err error
		submissionActivity, err = ss.client.FetchActivity(gCtx, user, models.ContentSubmission)
		return err
	})
	g.Go(func() error {
		var err error
		commentSubreddits, err = ss.client.FetchSubreddits(gCtx, user, models.ContentComment)
		return err
	})
	g.Go(func() error {
		var err error
		submissionSubreddits, err = ss.client.FetchSubreddits(gCtx, user, models.ContentSubmission)
		return err
	})

	if err := g.Wait(); err != nil {
		ss.logger.Errorf(providers.TypeApp, "Statistics run for %s failed: %s", user.Name, err)
		return nil, err
	}
	ss.metrics.ObserveFetchDuration(time.Since(start))

	raw := []models.PushShiftData{
		{Content: models.ContentComment, Dimension: models.ByCreated, Counts: commentActivity},
		{Content: models.ContentSubmission, Dimension: models.ByCreated, Counts: submissionActivity},
		{Content: models.ContentComment, Dimension: models.BySubreddit, SubredditCounts: commentSubreddits},
		{Content: models.ContentSubmission, Dimension: models.BySubreddit, SubredditCounts: submissionSubreddits},
	}

	ss.logger.Infof(providers.TypeApp, "Statistics run for %s completed in %s", user.Name, time.Since(start))
	return &models.SnapshotResult{
		Version:   statistic.SnapshotVersion,
		User:      user,
		Timestamp: timestamp,
		Data:      statistic.AggregateAll(raw),
	}, nil
}

func (ss *StatisticService) EncodeSnapshot(res *models.SnapshotResult) (string, error) {
	payload, err := ss.codec.Encode(res)
	if err != nil {
		ss.logger.Warnf(providers.TypeApp, "Snapshot encode for %s failed: %s", res.User.Name, err)
		return "", err
	}
	return payload, nil
}

func (ss *StatisticService) DecodeSnapshot(payload string) (*models.SnapshotResult, error) {
	res, err := ss.codec.Decode(payload)
	if err != nil {
		ss.metrics.IncSnapshotDecodeFailures()
		ss.logger.Warnf(providers.TypeApp, "Snapshot decode failed: %s", err)
		return nil, err
	}
	return res, nil
}
