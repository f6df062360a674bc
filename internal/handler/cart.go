package handler

import (
	"errors"
	"net/http"
	"pix-recovery/internal/dto"
	"pix-recovery/internal/service"

	"github.com/labstack/echo/v4"
)

type CartHandler struct {
	cartService service.CartService
	pixService  service.PixService
}

func NewCartHandler(cartService service.CartService, pixService service.PixService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		pixService:  pixService,
	}
}

func (h *CartHandler) ListAbandonedCarts(c echo.Context) error {
	ctx := c.Request().Context()

	carts, err := h.cartService.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, carts)
}

func (h *CartHandler) GeneratePix(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.GeneratePixRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	resp, err := h.pixService.Generate(ctx, req.CartID, req.Description)
	if err != nil {
		if errors.Is(err, service.ErrCartNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Carrinho não encontrado"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, resp)
}
