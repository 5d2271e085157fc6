package users

import (
	"context"

	"github.com/dkovalev/gamestore/internal/models"
	"github.com/dkovalev/gamestore/internal/ports"
	"github.com/dkovalev/gamestore/internal/rules"
)

// Service covers user account maintenance and library listing. Registration
// and login live in service/auth.
type Service struct {
	store ports.Store
}

func NewService(store ports.Store) *Service { return &Service{store: store} }

func (s *Service) Get(ctx context.Context, id uint) (*models.User, error) {
	return rules.UserExists(ctx, s.store, id)
}

func (s *Service) List(ctx context.Context) ([]*models.User, error) {
	return s.store.ListUsers(ctx)
}

// Library returns the ownership rows for the user.
func (s *Service) Library(ctx context.Context, userID uint) ([]*models.Library, error) {
	if _, err := rules.UserExists(ctx, s.store, userID); err != nil {
		return nil, err
	}
	return s.store.ListLibraryByUser(ctx, userID)
}

// EditEmail is the only mutable profile field.
func (s *Service) EditEmail(ctx context.Context, id uint, email string) error {
	return s.store.Tx(ctx, func(tx ports.Store) error {
		u, err := rules.UserExists(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := rules.UserEmailUniqueOnEdit(ctx, tx, email, id); err != nil {
			return err
		}
		u.Email = email
		return tx.UpdateUser(ctx, u)
	})
}

// Delete removes the user together with their orders, reviews and library rows.
func (s *Service) Delete(ctx context.Context, id uint) error {
	return s.store.Tx(ctx, func(tx ports.Store) error {
		if _, err := rules.UserExists(ctx, tx, id); err != nil {
			return err
		}
		return tx.DeleteUser(ctx, id)
	})
}
