package rules

import (
	"context"

	"github.com/dkovalev/gamestore/internal/fault"
	"github.com/dkovalev/gamestore/internal/models"
	"github.com/dkovalev/gamestore/internal/ports"
)

// PairNotOwned rejects a purchase when the user already owns the game.
func PairNotOwned(ctx context.Context, s ports.Store, userID, gameID uint) error {
	row, err := s.FindLibraryRow(ctx, userID, gameID)
	if err != nil {
		return err
	}
	if row != nil {
		return fault.Conflict("library", "", "game already purchased")
	}
	return nil
}

// PairOwned gates review creation on ownership.
func PairOwned(ctx context.Context, s ports.Store, userID, gameID uint) error {
	row, err := s.FindLibraryRow(ctx, userID, gameID)
	if err != nil {
		return err
	}
	if row == nil {
		return fault.Forbidden("buy the game to leave a review")
	}
	return nil
}

// OrderExistsForPair is the precondition for a return.
func OrderExistsForPair(ctx context.Context, s ports.Store, userID, gameID uint) (*models.Order, error) {
	o, err := s.FindOrderByPair(ctx, userID, gameID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, fault.NotFound("order", "purchase not found for the given ids")
	}
	return o, nil
}

// PairNotReviewed enforces at most one review per (user, game).
func PairNotReviewed(ctx context.Context, s ports.Store, userID, gameID uint) error {
	rev, err := s.FindReviewByPair(ctx, userID, gameID)
	if err != nil {
		return err
	}
	if rev != nil {
		return fault.Conflict("review", "", "you have already reviewed this game")
	}
	return nil
}

// ReviewExistsForPair is the precondition for deleting a review.
func ReviewExistsForPair(ctx context.Context, s ports.Store, userID, gameID uint) (*models.Review, error) {
	rev, err := s.FindReviewByPair(ctx, userID, gameID)
	if err != nil {
		return nil, err
	}
	if rev == nil {
		return nil, fault.NotFound("review", "review not found")
	}
	return rev, nil
}
