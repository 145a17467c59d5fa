package service

import (
	"context"
	"fmt"
	"pizza-shop-backend/internal/model"
	"pizza-shop-backend/internal/repository"
)

type MenuService interface {
	GetMenu(ctx context.Context) ([]*model.Pizza, error)
}

type menuServiceImpl struct {
	pizzaRepo repository.PizzaRepository
}

func NewMenuService(pizzaRepo repository.PizzaRepository) MenuService {
	return &menuServiceImpl{
		pizzaRepo: pizzaRepo,
	}
}

func (s *menuServiceImpl) GetMenu(ctx context.Context) ([]*model.Pizza, error) {
	pizzas, err := s.pizzaRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pizzas: %w", err)
	}
	return pizzas, nil
}
