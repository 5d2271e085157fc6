package reviews

import (
	"context"

	"github.com/dkovalev/gamestore/internal/models"
	"github.com/dkovalev/gamestore/internal/ports"
	"github.com/dkovalev/gamestore/internal/rules"
)

// Service implements reviews and keeps each game's aggregate rating in step
// with its review set.
type Service struct {
	store ports.Store
}

func NewService(store ports.Store) *Service { return &Service{store: store} }

// Add inserts the review and recomputes the game's rating in the same
// transaction. Validation order: user, game, not-already-reviewed, ownership.
func (s *Service) Add(ctx context.Context, rev *models.Review) (*models.Game, error) {
	var game *models.Game
	err := s.store.Tx(ctx, func(tx ports.Store) error {
		if _, err := rules.UserExists(ctx, tx, rev.UserID); err != nil {
			return err
		}
		g, err := rules.GameExists(ctx, tx, rev.GameID)
		if err != nil {
			return err
		}
		if err := rules.PairNotReviewed(ctx, tx, rev.UserID, rev.GameID); err != nil {
			return err
		}
		if err := rules.PairOwned(ctx, tx, rev.UserID, rev.GameID); err != nil {
			return err
		}
		if err := tx.CreateReview(ctx, rev); err != nil {
			return err
		}
		game = g
		return recompute(ctx, tx, rev.GameID)
	})
	if err != nil {
		return nil, err
	}
	return game, nil
}

// Delete removes the review for the pair and recomputes the game's rating.
func (s *Service) Delete(ctx context.Context, gameID, userID uint) error {
	return s.store.Tx(ctx, func(tx ports.Store) error {
		if _, err := rules.GameExists(ctx, tx, gameID); err != nil {
			return err
		}
		if _, err := rules.UserExists(ctx, tx, userID); err != nil {
			return err
		}
		if _, err := rules.ReviewExistsForPair(ctx, tx, userID, gameID); err != nil {
			return err
		}
		if err := tx.DeleteReviewByPair(ctx, userID, gameID); err != nil {
			return err
		}
		return recompute(ctx, tx, gameID)
	})
}

func (s *Service) ListReviews(ctx context.Context) ([]*models.Review, error) {
	return s.store.ListReviews(ctx)
}

func (s *Service) ListByUser(ctx context.Context, userID uint) ([]*models.Review, error) {
	if _, err := rules.UserExists(ctx, s.store, userID); err != nil {
		return nil, err
	}
	return s.store.ListReviewsByUser(ctx, userID)
}

func (s *Service) ListByGame(ctx context.Context, gameID uint) ([]*models.Review, error) {
	if _, err := rules.GameExists(ctx, s.store, gameID); err != nil {
		return nil, err
	}
	return s.store.ListReviewsByGame(ctx, gameID)
}
