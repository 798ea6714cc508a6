package model

// BaseInfo aggregates platform-wide counters for the public info endpoint.
type BaseInfo struct {
	ReviewCount          int64
	AverageRating        float64
	BusinessProfileCount int64
	OfferCount           int64
}
