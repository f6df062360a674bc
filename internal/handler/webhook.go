package handler

import (
	"errors"
	"net/http"
	"pix-recovery/internal/dto"
	"pix-recovery/internal/service"

	"github.com/labstack/echo/v4"
)

type WebhookHandler struct {
	webhookService service.WebhookService
}

func NewWebhookHandler(webhookService service.WebhookService) *WebhookHandler {
	return &WebhookHandler{webhookService: webhookService}
}

func (h *WebhookHandler) HandleYeverWebhook(c echo.Context) error {
	ctx := c.Request().Context()

	var event dto.CheckoutEvent
	if err := c.Bind(&event); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	if err := h.webhookService.HandleEvent(ctx, &event); err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			return c.String(http.StatusUnauthorized, "Token inválido")
		}
		return err
	}

	// acknowledged even when the event did not qualify, so the
	// platform never retries the delivery
	return c.String(http.StatusOK, "Webhook recebido")
}
