package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"log"
	"pix-recovery/internal/dto"
	"pix-recovery/internal/model"
	"pix-recovery/internal/repository"
)

var ErrUnauthorized = errors.New("invalid webhook token")

type WebhookService interface {
	HandleEvent(ctx context.Context, event *dto.CheckoutEvent) error
}

type webhookServiceImpl struct {
	cartRepo repository.CartRepository
	secret   string
}

func NewWebhookService(cartRepo repository.CartRepository, webhookSecret string) WebhookService {
	return &webhookServiceImpl{
		cartRepo: cartRepo,
		secret:   webhookSecret,
	}
}

// HandleEvent decides whether a checkout event is an abandoned-cart
// signal and persists it. Persistence is best effort: the platform must
// never be made to retry a delivery, so a failed upsert is only logged.
func (s *webhookServiceImpl) HandleEvent(ctx context.Context, event *dto.CheckoutEvent) error {
	if event.Token == "" {
		return ErrUnauthorized
	}
	if s.secret != "" && subtle.ConstantTimeCompare([]byte(event.Token), []byte(s.secret)) != 1 {
		return ErrUnauthorized
	}

	if !qualifies(event) {
		return nil
	}

	status := event.OrderStatus
	if status == "" {
		status = "abandoned"
	}

	cart := &model.AbandonedCart{
		Reference:     event.Reference,
		CustomerEmail: event.Customer.Email,
		CustomerName:  event.Customer.Name,
		CustomerPhone: event.Customer.Phone,
		Products:      string(event.Products),
		PriceTotal:    event.PriceTotal,
		CheckoutURL:   event.CheckoutURL,
		CreatedAt:     event.CreatedAt,
		UpdatedAt:     event.UpdatedAt,
		LastStep:      event.LastStep,
		Status:        status,
	}

	if err := s.cartRepo.Upsert(ctx, cart); err != nil {
		log.Println("save abandoned cart:", err)
	}

	return nil
}

// qualifies reports whether the customer reached a checkout step without
// the order ever completing. A canceled order still counts; anything
// else (e.g. paid) means there is nothing to recover.
func qualifies(event *dto.CheckoutEvent) bool {
	if event.LastStep == "" {
		return false
	}
	return event.OrderStatus == "" || event.OrderStatus == "canceled"
}
