package dto

// BaseInfoResponse exposes the platform-wide counters of the public info
// endpoint. Average rating is rounded to one decimal place.
type BaseInfoResponse struct {
	ReviewCount          int64   `json:"review_count"`
	AverageRating        float64 `json:"average_rating"`
	BusinessProfileCount int64   `json:"business_profile_count"`
	OfferCount           int64   `json:"offer_count"`
}
