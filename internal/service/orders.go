package service

import (
	"context"
	"fmt"
	"pix-recovery/internal/client"
)

type OrderService interface {
	ListOrders(ctx context.Context, status string, page, perPage int) ([]byte, error)
}

type orderServiceImpl struct {
	yeverClient client.YeverClient
}

func NewOrderService(yeverClient client.YeverClient) OrderService {
	return &orderServiceImpl{yeverClient: yeverClient}
}

// ListOrders is a pass-through to the platform's order listing; the
// upstream body is returned verbatim.
func (s *orderServiceImpl) ListOrders(ctx context.Context, status string, page, perPage int) ([]byte, error) {
	body, err := s.yeverClient.ListOrders(ctx, status, page, perPage)
	if err != nil {
		return nil, fmt.Errorf("yever list orders: %w", err)
	}

	return body, nil
}
