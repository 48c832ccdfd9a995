package interfaces

import (
	"github.com/DamienOReilly/reddit-stats/internal/models"
)

type SnapshotCodecInterface interface {
	Encode(res *models.SnapshotResult) (string, error)
	Decode(payload string) (*models.SnapshotResult, error)
}
