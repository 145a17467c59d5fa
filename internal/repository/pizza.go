package repository

import (
	"context"
	"pizza-shop-backend/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PizzaRepository interface {
	Seed(ctx context.Context) error
	List(ctx context.Context) ([]*model.Pizza, error)
	FindByIDs(ctx context.Context, pizzaIDs []string) ([]*model.Pizza, error)
}

type pizzaRepoImpl struct {
	db *gorm.DB
}

func NewPizzaRepository(db *gorm.DB) PizzaRepository {
	return &pizzaRepoImpl{
		db: db,
	}
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func (r *pizzaRepoImpl) Seed(ctx context.Context) error {
	pizzas := []model.Pizza{
		{ID: "margherita", Name: "Margherita", Description: "Classic pizza with fresh tomatoes, mozzarella, and basil", Price: price("12.99"), ImageURL: "https://images.unsplash.com/photo-1574071318508-1cdbab80d002?w=400&h=300&fit=crop"},
		{ID: "pepperoni", Name: "Pepperoni", Description: "Loaded with pepperoni and extra cheese", Price: price("14.99"), ImageURL: "https://images.unsplash.com/photo-1628840042765-356cda07504e?w=400&h=300&fit=crop"},
		{ID: "bbq-chicken", Name: "BBQ Chicken", Description: "Grilled chicken with BBQ sauce, onions, and cilantro", Price: price("16.99"), ImageURL: "https://images.unsplash.com/photo-1565299624946-b28f40a0ae38?w=400&h=300&fit=crop"},
		{ID: "hawaiian", Name: "Hawaiian", Description: "Ham, pineapple, and mozzarella cheese", Price: price("15.99"), ImageURL: "https://images.unsplash.com/photo-1565299507177-b0ac66763828?w=400&h=300&fit=crop"},
		{ID: "veggie-supreme", Name: "Veggie Supreme", Description: "Bell peppers, mushrooms, onions, olives, and tomatoes", Price: price("13.99"), ImageURL: "https://images.unsplash.com/photo-1571997478779-2adcbbe9ab2f?w=400&h=300&fit=crop"},
		{ID: "meat-lovers", Name: "Meat Lovers", Description: "Pepperoni, sausage, bacon, and ham", Price: price("17.99"), ImageURL: "https://images.unsplash.com/photo-1534308983496-4fabb1a015ee?w=400&h=300&fit=crop"},
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&pizzas).Error
}

func (r *pizzaRepoImpl) List(ctx context.Context) ([]*model.Pizza, error) {
	var pizzas []*model.Pizza
	err := r.db.WithContext(ctx).
		Find(&pizzas).
		Error

	if err != nil {
		return nil, err
	}

	return pizzas, nil
}

func (r *pizzaRepoImpl) FindByIDs(ctx context.Context, pizzaIDs []string) ([]*model.Pizza, error) {
	var pizzas []*model.Pizza
	err := r.db.WithContext(ctx).
		Where("id IN ?", pizzaIDs).
		Find(&pizzas).
		Error

	if err != nil {
		return nil, err
	}

	return pizzas, nil
}
