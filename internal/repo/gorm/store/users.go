package storegorm

import (
	"context"

	"github.com/dkovalev/gamestore/internal/models"
)

func (r *Repo) CreateUser(ctx context.Context, u *models.User) error {
	return dup(r.db.WithContext(ctx).Create(u).Error, "user", "", "user already exists")
}

func (r *Repo) UpdateUser(ctx context.Context, u *models.User) error {
	return dup(r.db.WithContext(ctx).Save(u).Error, "user", "", "user already exists")
}

// DeleteUser removes the user and, in the same statement sequence, the orders,
// reviews and library rows that reference it.
func (r *Repo) DeleteUser(ctx context.Context, id uint) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("user_id = ?", id).Delete(&models.Order{}).Error; err != nil {
		return err
	}
	if err := db.Where("user_id = ?", id).Delete(&models.Review{}).Error; err != nil {
		return err
	}
	if err := db.Where("user_id = ?", id).Delete(&models.Library{}).Error; err != nil {
		return err
	}
	return db.Delete(&models.User{}, id).Error
}

func (r *Repo) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	return firstOrNil(r.db.WithContext(ctx).First(&u, id).Error, &u)
}

func (r *Repo) FindUserByName(ctx context.Context, name string) (*models.User, error) {
	var u models.User
	return firstOrNil(r.db.WithContext(ctx).Where("name = ?", name).First(&u).Error, &u)
}

func (r *Repo) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	return firstOrNil(r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error, &u)
}

func (r *Repo) ListUsers(ctx context.Context) ([]*models.User, error) {
	var arr []*models.User
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&arr).Error; err != nil {
		return nil, err
	}
	return arr, nil
}
