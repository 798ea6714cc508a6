package usecase

import (
	"context"
	"math"

	"github.com/gigline/gigline/internal/domain/model"
	"github.com/gigline/gigline/internal/domain/repository"
)

// StatsUseCase exposes read-only platform aggregates.
type StatsUseCase struct {
	stats repository.StatsRepository
}

// NewStatsUseCase constructs StatsUseCase.
func NewStatsUseCase(stats repository.StatsRepository) *StatsUseCase {
	return &StatsUseCase{stats: stats}
}

// BaseInfo returns platform counters. The average rating is rounded to one
// decimal and is 0.0 when no reviews exist.
func (u *StatsUseCase) BaseInfo(ctx context.Context) (*model.BaseInfo, error) {
	info, err := u.stats.BaseInfo(ctx)
	if err != nil {
		return nil, err
	}
	info.AverageRating = math.Round(info.AverageRating*10) / 10
	return info, nil
}
