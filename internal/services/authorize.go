package services

import (
	"fmt"

	"podhub/internal/models"
)

// RequireRole is the single permission check for role-gated operations.
func RequireRole(user *models.User, role models.Role) error {
	if user == nil {
		return ErrUnauthorized
	}
	if user.Role != role {
		return fmt.Errorf("%w: requires role %s", ErrForbidden, role)
	}
	return nil
}
