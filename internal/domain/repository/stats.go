package repository

import (
	"context"

	"github.com/gigline/gigline/internal/domain/model"
)

// StatsRepository provides read-only platform aggregates.
type StatsRepository interface {
	BaseInfo(ctx context.Context) (*model.BaseInfo, error)
}
