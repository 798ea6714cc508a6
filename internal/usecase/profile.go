package usecase

import (
	"context"

	domainErrors "github.com/gigline/gigline/internal/domain/errors"
	"github.com/gigline/gigline/internal/domain/model"
	"github.com/gigline/gigline/internal/domain/repository"
)

// ProfileUseCase manages account profile reads and updates.
type ProfileUseCase struct {
	users repository.UserRepository
}

// NewProfileUseCase constructs ProfileUseCase.
func NewProfileUseCase(users repository.UserRepository) *ProfileUseCase {
	return &ProfileUseCase{users: users}
}

// Get returns the profile for the given account.
func (u *ProfileUseCase) Get(ctx context.Context, id int64) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}

// Update applies a partial profile update. Only the account owner or staff may
// edit a profile; the role is never touched.
func (u *ProfileUseCase) Update(ctx context.Context, actor model.Identity, id int64, patch model.ProfilePatch) (*model.User, error) {
	if actor.UserID != id && !actor.Staff {
		return nil, domainErrors.ErrNotOwner
	}
	return u.users.UpdateProfile(ctx, id, patch)
}

// ListByRole returns all profiles of the given account type.
func (u *ProfileUseCase) ListByRole(ctx context.Context, role model.Role) ([]model.User, error) {
	if !role.Valid() {
		return nil, domainErrors.ErrNotFound
	}
	return u.users.ListByRole(ctx, role)
}
