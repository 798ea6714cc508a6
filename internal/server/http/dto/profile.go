package dto

import (
	"time"

	"github.com/gigline/gigline/internal/domain/model"
)

// ProfileDetailResponse is the full profile representation returned to the
// single-profile endpoint. It includes email and creation time.
type ProfileDetailResponse struct {
	User         int64     `json:"user"`
	Username     string    `json:"username"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	File         string    `json:"file"`
	Location     string    `json:"location"`
	Tel          string    `json:"tel"`
	Description  string    `json:"description"`
	WorkingHours string    `json:"working_hours"`
	Type         string    `json:"type"`
	Email        string    `json:"email"`
	CreatedAt    time.Time `json:"created_at"`
}

// ProfileSummaryResponse is the reduced representation used by role listings.
// Email and creation time are deliberately absent.
type ProfileSummaryResponse struct {
	User         int64  `json:"user"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	File         string `json:"file"`
	Location     string `json:"location"`
	Tel          string `json:"tel"`
	Description  string `json:"description"`
	WorkingHours string `json:"working_hours"`
	Type         string `json:"type"`
}

// ProfileUpdateRequest carries a partial profile update. Absent fields keep
// their current values.
type ProfileUpdateRequest struct {
	FirstName    *string `json:"first_name"`
	LastName     *string `json:"last_name"`
	Email        *string `json:"email"`
	Tel          *string `json:"tel"`
	Location     *string `json:"location"`
	Description  *string `json:"description"`
	WorkingHours *string `json:"working_hours"`
	File         *string `json:"file"`
}

// NewProfileDetail maps a user onto the full profile shape.
func NewProfileDetail(u *model.User) ProfileDetailResponse {
	return ProfileDetailResponse{
		User:         u.ID,
		Username:     u.Username,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		File:         u.File,
		Location:     u.Location,
		Tel:          u.Tel,
		Description:  u.Description,
		WorkingHours: u.WorkingHours,
		Type:         string(u.Role),
		Email:        u.Email,
		CreatedAt:    u.CreatedAt,
	}
}

// NewProfileSummary maps a user onto the reduced listing shape.
func NewProfileSummary(u *model.User) ProfileSummaryResponse {
	return ProfileSummaryResponse{
		User:         u.ID,
		Username:     u.Username,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		File:         u.File,
		Location:     u.Location,
		Tel:          u.Tel,
		Description:  u.Description,
		WorkingHours: u.WorkingHours,
		Type:         string(u.Role),
	}
}

// Patch converts the request into a domain profile patch.
func (r ProfileUpdateRequest) Patch() model.ProfilePatch {
	return model.ProfilePatch{
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Email:        r.Email,
		Tel:          r.Tel,
		Location:     r.Location,
		Description:  r.Description,
		WorkingHours: r.WorkingHours,
		File:         r.File,
	}
}
