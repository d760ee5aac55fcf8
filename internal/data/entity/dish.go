package entity

import (
	"github.com/google/uuid"
)

// DishOption is an orderable variation of a dish (e.g. size, extras).
// Stored as jsonb on the dish row.
type DishOption struct {
	Name    string       `json:"name"`
	Extra   int          `json:"extra,omitempty"`
	Choices []DishChoice `json:"choices,omitempty"`
}

type DishChoice struct {
	Name  string `json:"name"`
	Extra int    `json:"extra,omitempty"`
}

type Dish struct {
	Base
	Name         string       `db:"name"`
	Price        int          `db:"price"`
	Photo        *string      `db:"photo"`
	Description  string       `db:"description"`
	Options      []DishOption `db:"options"`
	RestaurantID uuid.UUID    `db:"restaurant_id"`
}
