package usecase

import (
	"math"
	"strconv"
	"strings"

	domainErrors "github.com/gigline/gigline/internal/domain/errors"
	"github.com/gigline/gigline/internal/domain/model"
)

// ValidateTierSet checks that the given tiers form exactly the set
// {basic, standard, premium} with no repeats.
func ValidateTierSet(tiers []model.Tier) bool {
	if len(tiers) != len(model.Tiers()) {
		return false
	}
	seen := make(map[model.Tier]bool, len(tiers))
	for _, tier := range tiers {
		if !tier.Valid() || seen[tier] {
			return false
		}
		seen[tier] = true
	}
	return true
}

// NormalizeFeatures trims feature strings and drops empty entries, preserving
// order of the remainder.
func NormalizeFeatures(features []string) []string {
	cleaned := make([]string, 0, len(features))
	for _, f := range features {
		if s := strings.TrimSpace(f); s != "" {
			cleaned = append(cleaned, s)
		}
	}
	return cleaned
}

// RoundPrice normalizes a price to two-decimal fixed point.
func RoundPrice(price float64) float64 {
	return math.Round(price*100) / 100
}

// parseIDFilter parses an optional filter value that must be a non-negative
// integer. Empty input yields nil.
func parseIDFilter(field, value string) (*int64, error) {
	if value == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id < 0 {
		return nil, domainErrors.NewInvalidFilter(field)
	}
	return &id, nil
}

// parseIntFilter parses an optional non-negative integer filter value.
func parseIntFilter(field, value string) (*int, error) {
	if value == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return nil, domainErrors.NewInvalidFilter(field)
	}
	return &n, nil
}

// parseDecimalFilter parses an optional non-negative decimal filter value.
func parseDecimalFilter(field, value string) (*float64, error) {
	if value == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || f < 0 || math.IsInf(f, 0) || math.IsNaN(f) {
		return nil, domainErrors.NewInvalidFilter(field)
	}
	return &f, nil
}
