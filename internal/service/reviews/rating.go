package reviews

import (
	"context"
	"math"

	"github.com/dkovalev/gamestore/internal/ports"
)

// RoundRating rounds a mean rating to one decimal place, half to even.
func RoundRating(avg float64) float64 {
	return math.RoundToEven(avg*10) / 10
}

// recompute writes the game's aggregate rating: the rounded mean over all its
// reviews, or 0 when none remain.
func recompute(ctx context.Context, tx ports.Store, gameID uint) error {
	avg, count, err := tx.ReviewStats(ctx, gameID)
	if err != nil {
		return err
	}
	rating := 0.0
	if count > 0 {
		rating = RoundRating(avg)
	}
	return tx.SetGameRating(ctx, gameID, rating)
}
