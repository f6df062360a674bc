package service

import (
	"context"
	"errors"
	"fmt"
	"pix-recovery/internal/dto"
	"pix-recovery/internal/model"
	"pix-recovery/internal/pix"
	"pix-recovery/internal/repository"
	"time"

	"gorm.io/gorm"
)

var ErrCartNotFound = errors.New("cart not found")

type PixService interface {
	Generate(ctx context.Context, cartID uint, description string) (*dto.GeneratePixResponse, error)
}

type pixServiceImpl struct {
	cartRepo        repository.CartRepository
	transactionRepo repository.PixTransactionRepository
	pixKey          string
}

func NewPixService(
	cartRepo repository.CartRepository,
	transactionRepo repository.PixTransactionRepository,
	pixKey string,
) PixService {
	return &pixServiceImpl{
		cartRepo:        cartRepo,
		transactionRepo: transactionRepo,
		pixKey:          pixKey,
	}
}

// Generate builds a payment code for a stored cart and records the
// attempt. The payload builder is pure, so retrying after a failed
// insert is safe; the code is only handed out once the row exists.
func (s *pixServiceImpl) Generate(ctx context.Context, cartID uint, description string) (*dto.GeneratePixResponse, error) {
	cart, err := s.cartRepo.FindByID(ctx, cartID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, fmt.Errorf("find cart: %w", err)
	}

	if description == "" {
		description = fmt.Sprintf("Pagamento carrinho %s", cart.Reference)
	}

	payload := pix.BuildPayload(s.pixKey, cart.PriceTotal, description)
	pixURL := pix.QRImageURL(payload.Code)

	transaction := &model.PixTransaction{
		OrderReference: cart.Reference,
		CustomerEmail:  cart.CustomerEmail,
		Value:          cart.PriceTotal,
		Description:    description,
		PixCode:        payload.Code,
		PixURL:         &pixURL,
		CreatedAt:      time.Now(),
		Status:         "pending",
	}

	if err := s.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("store pix transaction: %w", err)
	}

	return &dto.GeneratePixResponse{
		PixCode:       payload.Code,
		PixURL:        pixURL,
		TransactionID: transaction.ID,
	}, nil
}
