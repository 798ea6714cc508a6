package repository

import (
	"context"

	"github.com/gigline/gigline/internal/domain/model"
)

// UserRepository describes persistence operations for users and their profiles.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	ListByRole(ctx context.Context, role model.Role) ([]model.User, error)
	UpdateProfile(ctx context.Context, id int64, patch model.ProfilePatch) (*model.User, error)
}
