// Package rules holds the entity validators: read-only checks against current
// storage state, run before a mutation. Each returns nil or a *fault.Error;
// none of them write.
package rules

import (
	"context"
	"fmt"

	"github.com/dkovalev/gamestore/internal/fault"
	"github.com/dkovalev/gamestore/internal/models"
	"github.com/dkovalev/gamestore/internal/ports"
)

// UserUniqueOnCreate checks name first, then email; the two conflicts carry
// distinct messages.
func UserUniqueOnCreate(ctx context.Context, s ports.Store, name, email string) error {
	u, err := s.FindUserByName(ctx, name)
	if err != nil {
		return err
	}
	if u != nil {
		return fault.Conflict("user", "name", fmt.Sprintf("user with name <%s> already exists", name))
	}
	u, err = s.FindUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if u != nil {
		return fault.Conflict("user", "email", fmt.Sprintf("user with email <%s> already exists", email))
	}
	return nil
}

// UserEmailUniqueOnEdit allows the user to keep their own email.
func UserEmailUniqueOnEdit(ctx context.Context, s ports.Store, email string, selfID uint) error {
	u, err := s.FindUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if u != nil && u.ID != selfID {
		return fault.Conflict("user", "email", fmt.Sprintf("user with email <%s> already exists", email))
	}
	return nil
}

// UserExists returns the user so callers need not refetch.
func UserExists(ctx context.Context, s ports.Store, id uint) (*models.User, error) {
	u, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fault.NotFound("user", "user not found")
	}
	return u, nil
}
