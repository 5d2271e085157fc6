package storegorm

import (
	"context"
	"fmt"

	"github.com/dkovalev/gamestore/internal/models"
)

// Genres

func (r *Repo) CreateGenre(ctx context.Context, g *models.Genre) error {
	err := r.db.WithContext(ctx).Create(g).Error
	return dup(err, "genre", "name", fmt.Sprintf("genre <%s> has already been added", g.Name))
}

func (r *Repo) UpdateGenre(ctx context.Context, g *models.Genre) error {
	err := r.db.WithContext(ctx).Save(g).Error
	return dup(err, "genre", "name", fmt.Sprintf("genre <%s> has already been added", g.Name))
}

func (r *Repo) DeleteGenre(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Genre{}, id).Error
}

func (r *Repo) GetGenre(ctx context.Context, id uint) (*models.Genre, error) {
	var g models.Genre
	return firstOrNil(r.db.WithContext(ctx).First(&g, id).Error, &g)
}

func (r *Repo) FindGenreByName(ctx context.Context, name string) (*models.Genre, error) {
	var g models.Genre
	err := r.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name).First(&g).Error
	return firstOrNil(err, &g)
}

func (r *Repo) ListGenres(ctx context.Context) ([]*models.Genre, error) {
	var arr []*models.Genre
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&arr).Error; err != nil {
		return nil, err
	}
	return arr, nil
}

func (r *Repo) CountGamesByGenre(ctx context.Context, genreID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Game{}).Where("genre_id = ?", genreID).Count(&n).Error
	return n, err
}

// Platforms

func (r *Repo) CreatePlatform(ctx context.Context, p *models.Platform) error {
	err := r.db.WithContext(ctx).Create(p).Error
	return dup(err, "platform", "name", fmt.Sprintf("platform <%s> has already been added", p.Name))
}

func (r *Repo) UpdatePlatform(ctx context.Context, p *models.Platform) error {
	err := r.db.WithContext(ctx).Save(p).Error
	return dup(err, "platform", "name", fmt.Sprintf("platform <%s> has already been added", p.Name))
}

func (r *Repo) DeletePlatform(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Platform{}, id).Error
}

func (r *Repo) GetPlatform(ctx context.Context, id uint) (*models.Platform, error) {
	var p models.Platform
	return firstOrNil(r.db.WithContext(ctx).First(&p, id).Error, &p)
}

func (r *Repo) FindPlatformByName(ctx context.Context, name string) (*models.Platform, error) {
	var p models.Platform
	err := r.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name).First(&p).Error
	return firstOrNil(err, &p)
}

func (r *Repo) ListPlatforms(ctx context.Context) ([]*models.Platform, error) {
	var arr []*models.Platform
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&arr).Error; err != nil {
		return nil, err
	}
	return arr, nil
}

func (r *Repo) CountGamesByPlatform(ctx context.Context, platformID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Game{}).Where("platform_id = ?", platformID).Count(&n).Error
	return n, err
}
