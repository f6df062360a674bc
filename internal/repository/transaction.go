package repository

import (
	"context"
	"pix-recovery/internal/model"

	"gorm.io/gorm"
)

type PixTransactionRepository interface {
	Create(ctx context.Context, transaction *model.PixTransaction) error
	CountByOrderReference(ctx context.Context, reference string) (int64, error)
}

type pixTransactionRepoImpl struct {
	db *gorm.DB
}

func NewPixTransactionRepository(db *gorm.DB) PixTransactionRepository {
	return &pixTransactionRepoImpl{db: db}
}

// Create appends one generation record; the id is assigned by the database.
func (r *pixTransactionRepoImpl) Create(ctx context.Context, transaction *model.PixTransaction) error {
	return r.db.WithContext(ctx).Create(transaction).Error
}

func (r *pixTransactionRepoImpl) CountByOrderReference(ctx context.Context, reference string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.PixTransaction{}).
		Where("order_reference = ?", reference).
		Count(&count).Error

	return count, err
}
