package server

import (
	"pizza-shop-backend/internal/handler"
	"pizza-shop-backend/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo         *echo.Echo
	orderHandler *handler.OrderHandler
	menuHandler  *handler.MenuHandler
}

func NewServer(checkoutService service.CheckoutService, menuService service.MenuService) *Server {
	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	orderHandler := handler.NewOrderHandler(checkoutService)
	menuHandler := handler.NewMenuHandler(menuService)

	s := &Server{
		echo:         e,
		orderHandler: orderHandler,
		menuHandler:  menuHandler,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	api.GET("/pizzas", s.menuHandler.GetPizzas)

	// -------- orders --------
	orders := api.Group("/orders")
	orders.POST("", s.orderHandler.CreateOrder)
	orders.POST("/square-payment", s.orderHandler.CreateSquarePayment)
	orders.GET("/:id", s.orderHandler.GetOrder)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
