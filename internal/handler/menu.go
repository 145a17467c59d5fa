package handler

import (
	"net/http"
	"pizza-shop-backend/internal/service"

	"github.com/labstack/echo/v4"
)

type MenuHandler struct {
	menuService service.MenuService
}

func NewMenuHandler(menuService service.MenuService) *MenuHandler {
	return &MenuHandler{
		menuService: menuService,
	}
}

func (h *MenuHandler) GetPizzas(c echo.Context) error {
	ctx := c.Request().Context()

	pizzas, err := h.menuService.GetMenu(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Error fetching menu"})
	}

	return c.JSON(http.StatusOK, pizzas)
}
