package rules

import (
	"context"
	"fmt"

	"github.com/dkovalev/gamestore/internal/fault"
	"github.com/dkovalev/gamestore/internal/models"
	"github.com/dkovalev/gamestore/internal/ports"
)

// GameTitleUnique rejects a title already used by a different game. selfID is 0
// on create and the edited game's id on edit.
func GameTitleUnique(ctx context.Context, s ports.Store, title string, selfID uint) error {
	g, err := s.FindGameByTitle(ctx, title)
	if err != nil {
		return err
	}
	if g != nil && g.ID != selfID {
		return fault.Conflict("game", "title", fmt.Sprintf("game <%s> has already been added", title))
	}
	return nil
}

func GameExists(ctx context.Context, s ports.Store, id uint) (*models.Game, error) {
	g, err := s.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, fault.NotFound("game", "game not found")
	}
	return g, nil
}

// GameRefsValid checks the genre reference, then the platform reference.
func GameRefsValid(ctx context.Context, s ports.Store, genreID, platformID uint) error {
	g, err := s.GetGenre(ctx, genreID)
	if err != nil {
		return err
	}
	if g == nil {
		return fault.Validation("genre_id", "genre with this id not found")
	}
	p, err := s.GetPlatform(ctx, platformID)
	if err != nil {
		return err
	}
	if p == nil {
		return fault.Validation("platform_id", "platform with this id not found")
	}
	return nil
}
