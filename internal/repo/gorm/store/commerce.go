package storegorm

import (
	"context"

	"github.com/dkovalev/gamestore/internal/models"
)

// Library

func (r *Repo) CreateLibraryRow(ctx context.Context, row *models.Library) error {
	return dup(r.db.WithContext(ctx).Create(row).Error, "library", "", "game already purchased")
}

func (r *Repo) DeleteLibraryRow(ctx context.Context, userID, gameID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND game_id = ?", userID, gameID).
		Delete(&models.Library{}).Error
}

func (r *Repo) FindLibraryRow(ctx context.Context, userID, gameID uint) (*models.Library, error) {
	var row models.Library
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND game_id = ?", userID, gameID).
		First(&row).Error
	return firstOrNil(err, &row)
}

func (r *Repo) ListLibraryByUser(ctx context.Context, userID uint) ([]*models.Library, error) {
	var arr []*models.Library
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("game_id ASC").Find(&arr).Error; err != nil {
		return nil, err
	}
	return arr, nil
}

// Orders

func (r *Repo) CreateOrder(ctx context.Context, o *models.Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *Repo) DeleteOrderByPair(ctx context.Context, userID, gameID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND game_id = ?", userID, gameID).
		Delete(&models.Order{}).Error
}

func (r *Repo) FindOrderByPair(ctx context.Context, userID, gameID uint) (*models.Order, error) {
	var o models.Order
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND game_id = ?", userID, gameID).
		First(&o).Error
	return firstOrNil(err, &o)
}

func (r *Repo) ListOrders(ctx context.Context) ([]*models.Order, error) {
	var arr []*models.Order
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&arr).Error; err != nil {
		return nil, err
	}
	return arr, nil
}

func (r *Repo) ListOrdersByUser(ctx context.Context, userID uint) ([]*models.Order, error) {
	var arr []*models.Order
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id ASC").Find(&arr).Error; err != nil {
		return nil, err
	}
	return arr, nil
}

// Reviews

func (r *Repo) CreateReview(ctx context.Context, rev *models.Review) error {
	return dup(r.db.WithContext(ctx).Create(rev).Error, "review", "", "you have already reviewed this game")
}

func (r *Repo) DeleteReviewByPair(ctx context.Context, userID, gameID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND game_id = ?", userID, gameID).
		Delete(&models.Review{}).Error
}

func (r *Repo) FindReviewByPair(ctx context.Context, userID, gameID uint) (*models.Review, error) {
	var rev models.Review
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND game_id = ?", userID, gameID).
		First(&rev).Error
	return firstOrNil(err, &rev)
}

func (r *Repo) ListReviews(ctx context.Context) ([]*models.Review, error) {
	var arr []*models.Review
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&arr).Error; err != nil {
		return nil, err
	}
	return arr, nil
}

func (r *Repo) ListReviewsByUser(ctx context.Context, userID uint) ([]*models.Review, error) {
	var arr []*models.Review
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id ASC").Find(&arr).Error; err != nil {
		return nil, err
	}
	return arr, nil
}

func (r *Repo) ListReviewsByGame(ctx context.Context, gameID uint) ([]*models.Review, error) {
	var arr []*models.Review
	if err := r.db.WithContext(ctx).Where("game_id = ?", gameID).Order("id ASC").Find(&arr).Error; err != nil {
		return nil, err
	}
	return arr, nil
}

// ReviewStats returns the mean rating and review count for a game.
func (r *Repo) ReviewStats(ctx context.Context, gameID uint) (float64, int64, error) {
	var res struct {
		Avg float64
		Cnt int64
	}
	err := r.db.WithContext(ctx).Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS cnt").
		Where("game_id = ?", gameID).
		Scan(&res).Error
	if err != nil {
		return 0, 0, err
	}
	return res.Avg, res.Cnt, nil
}

func (r *Repo) SetGameRating(ctx context.Context, gameID uint, rating float64) error {
	return r.db.WithContext(ctx).Model(&models.Game{}).
		Where("id = ?", gameID).
		Update("rating", rating).Error
}
