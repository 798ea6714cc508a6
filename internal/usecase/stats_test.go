package usecase

import (
	"context"
	"testing"

	"github.com/gigline/gigline/internal/domain/model"
	testhelpers "github.com/gigline/gigline/internal/test"
)

func TestStatsUseCaseBaseInfoRounding(t *testing.T) {
	cases := []struct {
		name string
		raw  float64
		want float64
	}{
		{name: "exact", raw: 4.0, want: 4.0},
		{name: "round down", raw: 4.333333, want: 4.3},
		{name: "round up", raw: 4.6666667, want: 4.7},
		{name: "half up", raw: 4.25, want: 4.3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := NewStatsUseCase(&testhelpers.StatsRepositoryStub{Info: &model.BaseInfo{
				ReviewCount:   3,
				AverageRating: tc.raw,
			}})
			info, err := uc.BaseInfo(context.Background())
			if err != nil {
				t.Fatalf("base info returned error: %v", err)
			}
			if info.AverageRating != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, info.AverageRating)
			}
		})
	}
}

func TestStatsUseCaseBaseInfoEmptyPlatform(t *testing.T) {
	uc := NewStatsUseCase(&testhelpers.StatsRepositoryStub{})

	info, err := uc.BaseInfo(context.Background())
	if err != nil {
		t.Fatalf("base info returned error: %v", err)
	}
	if info.ReviewCount != 0 || info.AverageRating != 0.0 || info.OfferCount != 0 || info.BusinessProfileCount != 0 {
		t.Fatalf("expected zeroed counters, got %+v", info)
	}
}
