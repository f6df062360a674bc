package server

import (
	"pix-recovery/internal/handler"
	"pix-recovery/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo           *echo.Echo
	webhookHandler *handler.WebhookHandler
	cartHandler    *handler.CartHandler
	orderHandler   *handler.OrderHandler
}

func NewServer(
	webhookService service.WebhookService,
	cartService service.CartService,
	pixService service.PixService,
	orderService service.OrderService,
) *Server {
	e := echo.New()

	e.Static("/", "public")

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:           e,
		webhookHandler: handler.NewWebhookHandler(webhookService),
		cartHandler:    handler.NewCartHandler(cartService, pixService),
		orderHandler:   handler.NewOrderHandler(orderService),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// -------- yever webhooks --------
	s.echo.POST("/yever-webhook", s.webhookHandler.HandleYeverWebhook)

	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	api.GET("/abandoned-carts", s.cartHandler.ListAbandonedCarts)
	api.POST("/generate-pix", s.cartHandler.GeneratePix)
	api.GET("/yever-orders", s.orderHandler.ListYeverOrders)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
