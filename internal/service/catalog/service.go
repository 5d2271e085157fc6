package catalog

import (
	"context"

	"github.com/dkovalev/gamestore/internal/models"
	"github.com/dkovalev/gamestore/internal/ports"
	"github.com/dkovalev/gamestore/internal/rules"
)

// Service covers the catalog entities: games, genres, platforms.
type Service struct {
	store ports.Store
}

func NewService(store ports.Store) *Service { return &Service{store: store} }

// Games

// AddGame validates title uniqueness, then genre/platform existence, in that
// order, and inserts with rating 0.
func (s *Service) AddGame(ctx context.Context, g *models.Game) error {
	return s.store.Tx(ctx, func(tx ports.Store) error {
		if err := rules.GameTitleUnique(ctx, tx, g.Title, 0); err != nil {
			return err
		}
		if err := rules.GameRefsValid(ctx, tx, g.GenreID, g.PlatformID); err != nil {
			return err
		}
		g.Rating = 0
		return tx.CreateGame(ctx, g)
	})
}

// EditGame overwrites every mutable field; id and rating stay untouched.
func (s *Service) EditGame(ctx context.Context, id uint, upd models.Game) error {
	return s.store.Tx(ctx, func(tx ports.Store) error {
		g, err := rules.GameExists(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := rules.GameTitleUnique(ctx, tx, upd.Title, id); err != nil {
			return err
		}
		if err := rules.GameRefsValid(ctx, tx, upd.GenreID, upd.PlatformID); err != nil {
			return err
		}
		g.GenreID = upd.GenreID
		g.PlatformID = upd.PlatformID
		g.Title = upd.Title
		g.Description = upd.Description
		g.Price = upd.Price
		g.ReleaseDate = upd.ReleaseDate
		g.Developer = upd.Developer
		return tx.UpdateGame(ctx, g)
	})
}

func (s *Service) DeleteGame(ctx context.Context, id uint) error {
	return s.store.Tx(ctx, func(tx ports.Store) error {
		if _, err := rules.GameExists(ctx, tx, id); err != nil {
			return err
		}
		return tx.DeleteGame(ctx, id)
	})
}

func (s *Service) GetGame(ctx context.Context, id uint) (*models.Game, error) {
	return rules.GameExists(ctx, s.store, id)
}

func (s *Service) ListGames(ctx context.Context) ([]*models.Game, error) {
	return s.store.ListGames(ctx)
}

func (s *Service) SearchGames(ctx context.Context, keyword string) ([]*models.Game, error) {
	return s.store.SearchGames(ctx, keyword)
}

// Genres

func (s *Service) AddGenre(ctx context.Context, g *models.Genre) error {
	return s.store.Tx(ctx, func(tx ports.Store) error {
		if err := rules.GenreNameUnique(ctx, tx, g.Name, 0); err != nil {
			return err
		}
		return tx.CreateGenre(ctx, g)
	})
}

func (s *Service) EditGenre(ctx context.Context, id uint, name string) error {
	return s.store.Tx(ctx, func(tx ports.Store) error {
		g, err := rules.GenreExists(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := rules.GenreNameUnique(ctx, tx, name, id); err != nil {
			return err
		}
		g.Name = name
		return tx.UpdateGenre(ctx, g)
	})
}

// DeleteGenre is blocked while games still reference the genre.
func (s *Service) DeleteGenre(ctx context.Context, id uint) error {
	return s.store.Tx(ctx, func(tx ports.Store) error {
		if _, err := rules.GenreExists(ctx, tx, id); err != nil {
			return err
		}
		if err := rules.GenreUnreferenced(ctx, tx, id); err != nil {
			return err
		}
		return tx.DeleteGenre(ctx, id)
	})
}

func (s *Service) ListGenres(ctx context.Context) ([]*models.Genre, error) {
	return s.store.ListGenres(ctx)
}

// Platforms

func (s *Service) AddPlatform(ctx context.Context, p *models.Platform) error {
	return s.store.Tx(ctx, func(tx ports.Store) error {
		if err := rules.PlatformNameUnique(ctx, tx, p.Name, 0); err != nil {
			return err
		}
		return tx.CreatePlatform(ctx, p)
	})
}

func (s *Service) EditPlatform(ctx context.Context, id uint, name string) error {
	return s.store.Tx(ctx, func(tx ports.Store) error {
		p, err := rules.PlatformExists(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := rules.PlatformNameUnique(ctx, tx, name, id); err != nil {
			return err
		}
		p.Name = name
		return tx.UpdatePlatform(ctx, p)
	})
}

func (s *Service) DeletePlatform(ctx context.Context, id uint) error {
	return s.store.Tx(ctx, func(tx ports.Store) error {
		if _, err := rules.PlatformExists(ctx, tx, id); err != nil {
			return err
		}
		if err := rules.PlatformUnreferenced(ctx, tx, id); err != nil {
			return err
		}
		return tx.DeletePlatform(ctx, id)
	})
}

func (s *Service) ListPlatforms(ctx context.Context) ([]*models.Platform, error) {
	return s.store.ListPlatforms(ctx)
}
