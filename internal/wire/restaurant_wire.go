package wire

import (
	"food-ordering/internal/adaptor"
	"food-ordering/internal/data/repository"
	"food-ordering/pkg/middleware"
	"food-ordering/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireRestaurant(
	r chi.Router,
	restaurantHandler *adaptor.RestaurantHandler,
	repo *repository.Repository,
	tokens token.Service,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// Browsing the catalog is open to anyone
	r.Get("/api/restaurants", restaurantHandler.GetRestaurants)
	r.Get("/api/restaurants/search", restaurantHandler.SearchRestaurants)
	r.Get("/api/restaurants/{id}", restaurantHandler.GetRestaurantByID)
	r.Get("/api/categories", restaurantHandler.GetAllCategories)
	r.Get("/api/categories/{slug}", restaurantHandler.GetCategoryBySlug)

	// ==================== OWNER ROUTES ====================
	// Group owner routes with middleware chain
	r.Route("/api/owner", func(r chi.Router) {
		// Apply middleware to all routes in this group
		r.Use(middleware.AuthJWT(tokens, repo.User, log)) // Must be authenticated
		r.Use(middleware.RequireRole("owner", log))       // Must be a restaurant owner

		// Restaurant management endpoints
		r.Post("/restaurants", restaurantHandler.CreateRestaurant)        // POST /api/owner/restaurants
		r.Put("/restaurants/{id}", restaurantHandler.EditRestaurant)      // PUT /api/owner/restaurants/{id}
		r.Delete("/restaurants/{id}", restaurantHandler.DeleteRestaurant) // DELETE /api/owner/restaurants/{id}

		// Dish management endpoints
		r.Post("/dishes", restaurantHandler.CreateDish)        // POST /api/owner/dishes
		r.Put("/dishes/{id}", restaurantHandler.EditDish)      // PUT /api/owner/dishes/{id}
		r.Delete("/dishes/{id}", restaurantHandler.DeleteDish) // DELETE /api/owner/dishes/{id}
	})
}
