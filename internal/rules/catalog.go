package rules

import (
	"context"
	"fmt"

	"github.com/dkovalev/gamestore/internal/fault"
	"github.com/dkovalev/gamestore/internal/models"
	"github.com/dkovalev/gamestore/internal/ports"
)

// Genre and platform names are unique case-insensitively.

func GenreNameUnique(ctx context.Context, s ports.Store, name string, selfID uint) error {
	g, err := s.FindGenreByName(ctx, name)
	if err != nil {
		return err
	}
	if g != nil && g.ID != selfID {
		return fault.Conflict("genre", "name", fmt.Sprintf("genre <%s> has already been added", name))
	}
	return nil
}

func GenreExists(ctx context.Context, s ports.Store, id uint) (*models.Genre, error) {
	g, err := s.GetGenre(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, fault.NotFound("genre", "genre not found")
	}
	return g, nil
}

// GenreUnreferenced blocks deletion while any game still references the genre.
func GenreUnreferenced(ctx context.Context, s ports.Store, id uint) error {
	n, err := s.CountGamesByGenre(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return fault.Conflict("genre", "", "genre is referenced by existing games")
	}
	return nil
}

func PlatformNameUnique(ctx context.Context, s ports.Store, name string, selfID uint) error {
	p, err := s.FindPlatformByName(ctx, name)
	if err != nil {
		return err
	}
	if p != nil && p.ID != selfID {
		return fault.Conflict("platform", "name", fmt.Sprintf("platform <%s> has already been added", name))
	}
	return nil
}

func PlatformExists(ctx context.Context, s ports.Store, id uint) (*models.Platform, error) {
	p, err := s.GetPlatform(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fault.NotFound("platform", "platform not found")
	}
	return p, nil
}

func PlatformUnreferenced(ctx context.Context, s ports.Store, id uint) error {
	n, err := s.CountGamesByPlatform(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return fault.Conflict("platform", "", "platform is referenced by existing games")
	}
	return nil
}
