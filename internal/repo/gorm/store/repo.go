package storegorm

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/dkovalev/gamestore/internal/fault"
	"github.com/dkovalev/gamestore/internal/models"
	"github.com/dkovalev/gamestore/internal/ports"
)

// Repo implements ports.Store on top of GORM.
type Repo struct{ db *gorm.DB }

var _ ports.Store = (*Repo)(nil)

func New(db *gorm.DB) *Repo { return &Repo{db: db} }

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Genre{},
		&models.Platform{},
		&models.Game{},
		&models.Library{},
		&models.Order{},
		&models.Review{},
	)
}

// Tx hands fn a transaction-scoped Repo; nested calls join the outer transaction
// via savepoints.
func (r *Repo) Tx(ctx context.Context, fn func(ports.Store) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Repo{db: tx})
	})
}

// firstOrNil absorbs ErrRecordNotFound so lookups report a missing row as (nil, nil).
func firstOrNil[T any](err error, v *T) (*T, error) {
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return v, nil
}

// dup translates a unique-constraint violation at write time into the same
// Conflict kind a validator pre-check would have produced.
func dup(err error, entity, field, msg string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fault.Conflict(entity, field, msg)
	}
	return err
}
