package response

import (
	"time"

	"food-ordering/internal/data/entity"
)

type CategoryResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Slug            string  `json:"slug"`
	CoverImage      *string `json:"cover_image,omitempty"`
	RestaurantCount int64   `json:"restaurant_count"`
}

type RestaurantResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	CoverImage string    `json:"cover_image"`
	Address    string    `json:"address"`
	IsPromoted bool      `json:"is_promoted"`
	OwnerID    string    `json:"owner_id"`
	CategoryID *string   `json:"category_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// RestaurantDetailResponse adds the menu to a single restaurant view
type RestaurantDetailResponse struct {
	RestaurantResponse
	Menu []DishResponse `json:"menu"`
}

type DishResponse struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Price        int                 `json:"price"`
	Photo        *string             `json:"photo,omitempty"`
	Description  string              `json:"description"`
	Options      []entity.DishOption `json:"options,omitempty"`
	RestaurantID string              `json:"restaurant_id"`
}

// Helper converters

func CategoryToResponse(category *entity.Category, restaurantCount int64) CategoryResponse {
	return CategoryResponse{
		ID:              category.ID.String(),
		Name:            category.Name,
		Slug:            category.Slug,
		CoverImage:      category.CoverImage,
		RestaurantCount: restaurantCount,
	}
}

func RestaurantToResponse(restaurant *entity.Restaurant) RestaurantResponse {
	resp := RestaurantResponse{
		ID:         restaurant.ID.String(),
		Name:       restaurant.Name,
		CoverImage: restaurant.CoverImage,
		Address:    restaurant.Address,
		IsPromoted: restaurant.IsPromoted,
		OwnerID:    restaurant.OwnerID.String(),
		CreatedAt:  restaurant.CreatedAt,
	}

	if restaurant.CategoryID != nil {
		categoryID := restaurant.CategoryID.String()
		resp.CategoryID = &categoryID
	}

	return resp
}

func DishToResponse(dish *entity.Dish) DishResponse {
	return DishResponse{
		ID:           dish.ID.String(),
		Name:         dish.Name,
		Price:        dish.Price,
		Photo:        dish.Photo,
		Description:  dish.Description,
		Options:      dish.Options,
		RestaurantID: dish.RestaurantID.String(),
	}
}
