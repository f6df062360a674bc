package repository

import (
	"context"
	"pix-recovery/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartRepository interface {
	Upsert(ctx context.Context, cart *model.AbandonedCart) error
	FindByID(ctx context.Context, id uint) (*model.AbandonedCart, error)
	ListByUpdatedAtDesc(ctx context.Context) ([]*model.AbandonedCart, error)
}

type cartRepoImpl struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepoImpl{
		db: db,
	}
}

// Upsert relies on the database's insert-or-replace on the reference
// unique index, so two concurrent deliveries for the same reference
// cannot interleave a read-then-write.
func (r *cartRepoImpl) Upsert(ctx context.Context, cart *model.AbandonedCart) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "reference"}},
			UpdateAll: true,
		}).
		Create(cart).Error
}

func (r *cartRepoImpl) FindByID(ctx context.Context, id uint) (*model.AbandonedCart, error) {
	var cart model.AbandonedCart
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&cart).Error

	if err != nil {
		return nil, err
	}

	return &cart, nil
}

func (r *cartRepoImpl) ListByUpdatedAtDesc(ctx context.Context) ([]*model.AbandonedCart, error) {
	var carts []*model.AbandonedCart
	err := r.db.WithContext(ctx).
		Order("updated_at DESC").
		Find(&carts).Error

	if err != nil {
		return nil, err
	}

	return carts, nil
}
