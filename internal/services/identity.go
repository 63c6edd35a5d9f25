package services

import (
	"context"
	"errors"
	"fmt"

	"podhub/internal/models"
	"podhub/internal/repositories"
)

// IdentityResolver maps a bearer token to the stored user it names. Nothing
// is cached: every call re-verifies the token and re-reads the user.
type IdentityResolver struct {
	tokens *TokenService
	users  repositories.UserRepository
}

// NewIdentityResolver creates a new IdentityResolver.
func NewIdentityResolver(tokens *TokenService, users repositories.UserRepository) *IdentityResolver {
	return &IdentityResolver{
		tokens: tokens,
		users:  users,
	}
}

// Resolve returns the user whose email is the token subject.
func (r *IdentityResolver) Resolve(ctx context.Context, token string) (*models.User, error) {
	email, err := r.tokens.Verify(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	user, err := r.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: user not found", ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}
	return user, nil
}
