package request

import (
	"food-ordering/internal/data/entity"
)

type CreateDishRequest struct {
	RestaurantID string              `json:"restaurant_id" validate:"required,uuid"`
	Name         string              `json:"name" validate:"required,min=2,max=100"`
	Price        int                 `json:"price" validate:"required,min=0"`
	Photo        *string             `json:"photo,omitempty" validate:"omitempty,url"`
	Description  string              `json:"description" validate:"required,min=5,max=200"`
	Options      []entity.DishOption `json:"options,omitempty"`
}

type EditDishRequest struct {
	Name        *string             `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Price       *int                `json:"price,omitempty" validate:"omitempty,min=0"`
	Photo       *string             `json:"photo,omitempty" validate:"omitempty,url"`
	Description *string             `json:"description,omitempty" validate:"omitempty,min=5,max=200"`
	Options     []entity.DishOption `json:"options,omitempty"`
}
