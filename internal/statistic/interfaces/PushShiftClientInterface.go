package interfaces

import (
	"context"

	"github.com/DamienOReilly/reddit-stats/internal/models"
)

type PushShiftClientInterface interface {
	FetchActivity(ctx context.Context, user models.User, content models.ContentType) ([]models.RawCount, error)
	FetchSubreddits(ctx context.Context, user models.User, content models.ContentType) ([]models.RawCountBySubreddit, error)
}
