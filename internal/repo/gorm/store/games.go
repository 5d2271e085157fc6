package storegorm

import (
	"context"
	"fmt"

	"github.com/dkovalev/gamestore/internal/models"
)

func (r *Repo) CreateGame(ctx context.Context, g *models.Game) error {
	err := r.db.WithContext(ctx).Create(g).Error
	return dup(err, "game", "title", fmt.Sprintf("game <%s> has already been added", g.Title))
}

func (r *Repo) UpdateGame(ctx context.Context, g *models.Game) error {
	err := r.db.WithContext(ctx).Save(g).Error
	return dup(err, "game", "title", fmt.Sprintf("game <%s> has already been added", g.Title))
}

// DeleteGame removes the game along with its orders, reviews and library rows.
func (r *Repo) DeleteGame(ctx context.Context, id uint) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("game_id = ?", id).Delete(&models.Order{}).Error; err != nil {
		return err
	}
	if err := db.Where("game_id = ?", id).Delete(&models.Review{}).Error; err != nil {
		return err
	}
	if err := db.Where("game_id = ?", id).Delete(&models.Library{}).Error; err != nil {
		return err
	}
	return db.Delete(&models.Game{}, id).Error
}

func (r *Repo) GetGame(ctx context.Context, id uint) (*models.Game, error) {
	var g models.Game
	return firstOrNil(r.db.WithContext(ctx).First(&g, id).Error, &g)
}

func (r *Repo) FindGameByTitle(ctx context.Context, title string) (*models.Game, error) {
	var g models.Game
	return firstOrNil(r.db.WithContext(ctx).Where("title = ?", title).First(&g).Error, &g)
}

// SearchGames matches titles by case-insensitive substring.
func (r *Repo) SearchGames(ctx context.Context, keyword string) ([]*models.Game, error) {
	var arr []*models.Game
	pat := "%" + keyword + "%"
	if err := r.db.WithContext(ctx).Where("LOWER(title) LIKE LOWER(?)", pat).Order("id ASC").Find(&arr).Error; err != nil {
		return nil, err
	}
	return arr, nil
}

func (r *Repo) ListGames(ctx context.Context) ([]*models.Game, error) {
	var arr []*models.Game
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&arr).Error; err != nil {
		return nil, err
	}
	return arr, nil
}
