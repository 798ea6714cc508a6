package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/gigline/gigline/internal/domain/errors"
	"github.com/gigline/gigline/internal/domain/model"
	"github.com/gigline/gigline/internal/domain/repository"
	pkgAuth "github.com/gigline/gigline/internal/pkg/auth"
)

// RegisterInput carries the registration payload. The role is fixed at
// registration time and never changes afterwards.
type RegisterInput struct {
	Username         string
	Email            string
	Password         string
	RepeatedPassword string
	Role             model.Role
}

// AuthUseCase handles account lifecycle and token management.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy}
}

// Register creates a new account and returns it together with an auth token.
func (u *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*model.User, string, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(input.Email)
	if username == "" || email == "" || input.Password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}
	if input.Password != input.RepeatedPassword {
		return nil, "", domainErrors.ErrPasswordMismatch
	}
	if !input.Role.Valid() {
		return nil, "", domainErrors.ErrRoleViolation
	}

	// Usernames with spaces are stored with underscores.
	username = strings.ReplaceAll(username, " ", "_")

	hash, err := u.hasher.Hash(input.Password)
	if err != nil {
		return nil, "", err
	}

	usr, err := u.users.Create(ctx, &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         input.Role,
	})
	if err != nil {
		return nil, "", err
	}

	token, err := u.issueToken(usr)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// Authenticate validates credentials and returns the account with a token.
func (u *AuthUseCase) Authenticate(ctx context.Context, username, password string) (*model.User, string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.issueToken(usr)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// ParseToken extracts the caller identity from the provided token.
func (u *AuthUseCase) ParseToken(token string) (model.Identity, error) {
	if token == "" {
		return model.Identity{}, pkgAuth.ErrInvalidToken
	}
	parsed, err := u.tokens.ParseToken(token)
	if err != nil {
		return model.Identity{}, err
	}
	role := model.Role(parsed.Role)
	if !role.Valid() {
		return model.Identity{}, pkgAuth.ErrInvalidToken
	}
	return model.Identity{UserID: parsed.UserID, Role: role, Staff: parsed.Staff}, nil
}

// GetByID fetches an account by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}

func (u *AuthUseCase) issueToken(usr *model.User) (string, error) {
	return u.tokens.IssueToken(pkgAuth.Identity{
		UserID: usr.ID,
		Role:   string(usr.Role),
		Staff:  usr.Staff,
	})
}
