package repository

import (
	"food-ordering/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User         UserRepository
	Verification VerificationRepository
	Restaurant   RestaurantRepository
	Category     CategoryRepository
	Dish         DishRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:         NewUserRepository(db, log),
		Verification: NewVerificationRepository(db, log),
		Restaurant:   NewRestaurantRepository(db, log),
		Category:     NewCategoryRepository(db, log),
		Dish:         NewDishRepository(db, log),
	}
}
