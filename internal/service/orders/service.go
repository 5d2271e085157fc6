package orders

import (
	"context"

	"github.com/dkovalev/gamestore/internal/models"
	"github.com/dkovalev/gamestore/internal/ports"
	"github.com/dkovalev/gamestore/internal/rules"
)

// Service implements purchases and returns. An order and its library row are
// created and destroyed together, always within one transaction.
type Service struct {
	store ports.Store
}

func NewService(store ports.Store) *Service { return &Service{store: store} }

// Purchase snapshots the current game price into a new order and inserts the
// matching library row. Returns the order and the purchased game.
func (s *Service) Purchase(ctx context.Context, userID, gameID uint) (*models.Order, *models.Game, error) {
	var (
		order *models.Order
		game  *models.Game
	)
	err := s.store.Tx(ctx, func(tx ports.Store) error {
		if _, err := rules.UserExists(ctx, tx, userID); err != nil {
			return err
		}
		g, err := rules.GameExists(ctx, tx, gameID)
		if err != nil {
			return err
		}
		if err := rules.PairNotOwned(ctx, tx, userID, gameID); err != nil {
			return err
		}
		o := &models.Order{
			UserID:       userID,
			GameID:       gameID,
			GamePrice:    g.Price,
			PurchaseDate: models.Today(),
		}
		if err := tx.CreateOrder(ctx, o); err != nil {
			return err
		}
		if err := tx.CreateLibraryRow(ctx, &models.Library{UserID: userID, GameID: gameID}); err != nil {
			return err
		}
		order, game = o, g
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return order, game, nil
}

// Return deletes the order and the library row for the pair together.
func (s *Service) Return(ctx context.Context, userID, gameID uint) error {
	return s.store.Tx(ctx, func(tx ports.Store) error {
		if _, err := rules.UserExists(ctx, tx, userID); err != nil {
			return err
		}
		if _, err := rules.GameExists(ctx, tx, gameID); err != nil {
			return err
		}
		if _, err := rules.OrderExistsForPair(ctx, tx, userID, gameID); err != nil {
			return err
		}
		if err := tx.DeleteOrderByPair(ctx, userID, gameID); err != nil {
			return err
		}
		return tx.DeleteLibraryRow(ctx, userID, gameID)
	})
}

func (s *Service) ListOrders(ctx context.Context) ([]*models.Order, error) {
	return s.store.ListOrders(ctx)
}

func (s *Service) ListOrdersByUser(ctx context.Context, userID uint) ([]*models.Order, error) {
	if _, err := rules.UserExists(ctx, s.store, userID); err != nil {
		return nil, err
	}
	return s.store.ListOrdersByUser(ctx, userID)
}
