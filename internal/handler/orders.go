package handler

import (
	"log"
	"net/http"
	"pix-recovery/internal/service"
	"strconv"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	orderService service.OrderService
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func (h *OrderHandler) ListYeverOrders(c echo.Context) error {
	ctx := c.Request().Context()

	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page <= 0 {
		page = 1
	}
	perPage, _ := strconv.Atoi(c.QueryParam("per_page"))
	if perPage <= 0 {
		perPage = 100
	}

	body, err := h.orderService.ListOrders(ctx, c.QueryParam("status"), page, perPage)
	if err != nil {
		log.Println("query yever orders:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Erro ao consultar API Yever"})
	}

	return c.JSONBlob(http.StatusOK, body)
}
