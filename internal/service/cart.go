package service

import (
	"context"
	"fmt"
	"pix-recovery/internal/model"
	"pix-recovery/internal/repository"
)

type CartService interface {
	List(ctx context.Context) ([]*model.AbandonedCart, error)
}

type cartServiceImpl struct {
	cartRepo repository.CartRepository
}

func NewCartService(cartRepo repository.CartRepository) CartService {
	return &cartServiceImpl{cartRepo: cartRepo}
}

// List returns every stored cart, most recently updated first.
func (s *cartServiceImpl) List(ctx context.Context) ([]*model.AbandonedCart, error) {
	carts, err := s.cartRepo.ListByUpdatedAtDesc(ctx)
	if err != nil {
		return nil, fmt.Errorf("list abandoned carts: %w", err)
	}

	return carts, nil
}
