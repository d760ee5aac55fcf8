package usecase

import (
	"context"
	"time"

	"food-ordering/internal/data/entity"
	"food-ordering/internal/data/repository"
	"food-ordering/internal/dto/request"
	"food-ordering/internal/dto/response"
	"food-ordering/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RestaurantService interface {
	// Owner operations
	CreateRestaurant(ctx context.Context, ownerID uuid.UUID, req *request.CreateRestaurantRequest) (*response.RestaurantResponse, error)
	EditRestaurant(ctx context.Context, ownerID uuid.UUID, restaurantID string, req *request.EditRestaurantRequest) error
	DeleteRestaurant(ctx context.Context, ownerID uuid.UUID, restaurantID string) error
	CreateDish(ctx context.Context, ownerID uuid.UUID, req *request.CreateDishRequest) (*response.DishResponse, error)
	EditDish(ctx context.Context, ownerID uuid.UUID, dishID string, req *request.EditDishRequest) error
	DeleteDish(ctx context.Context, ownerID uuid.UUID, dishID string) error

	// Public queries
	GetRestaurants(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.RestaurantResponse], error)
	GetRestaurantByID(ctx context.Context, restaurantID string) (*response.RestaurantDetailResponse, error)
	SearchRestaurants(ctx context.Context, search string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.RestaurantResponse], error)
	GetAllCategories(ctx context.Context) ([]response.CategoryResponse, error)
	GetCategoryBySlug(ctx context.Context, slug string, req *request.PaginatedRequest) (*response.CategoryResponse, *response.PaginatedResponse[response.RestaurantResponse], error)
}

type restaurantService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRestaurantService(repo *repository.Repository, log *zap.Logger) RestaurantService {
	return &restaurantService{
		repo: repo,
		log:  log.With(zap.String("service", "restaurant")),
	}
}

func (s *restaurantService) CreateRestaurant(ctx context.Context, ownerID uuid.UUID, req *request.CreateRestaurantRequest) (*response.RestaurantResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create restaurant validation failed", zap.Any("errors", errs))
		return nil, ErrCatalogActionFailed
	}

	// 2. Resolve category, creating it on first use
	category, err := s.repo.Category.GetOrCreate(ctx, req.CategoryName)
	if err != nil {
		s.log.Error("Failed to get or create category",
			zap.Error(err), zap.String("category", req.CategoryName))
		return nil, ErrCatalogActionFailed
	}

	// 3. Create restaurant entity owned by the caller
	now := time.Now()
	restaurant := &entity.Restaurant{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:       req.Name,
		CoverImage: req.CoverImage,
		Address:    req.Address,
		OwnerID:    ownerID,
		CategoryID: &category.ID,
	}

	if err := s.repo.Restaurant.Create(ctx, restaurant); err != nil {
		s.log.Error("Failed to create restaurant",
			zap.Error(err), zap.String("owner_id", ownerID.String()))
		return nil, ErrCatalogActionFailed
	}

	s.log.Info("Restaurant created",
		zap.String("restaurant_id", restaurant.ID.String()),
		zap.String("owner_id", ownerID.String()))

	resp := response.RestaurantToResponse(restaurant)
	return &resp, nil
}

func (s *restaurantService) EditRestaurant(ctx context.Context, ownerID uuid.UUID, restaurantID string, req *request.EditRestaurantRequest) error {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Edit restaurant validation failed", zap.Any("errors", errs))
		return ErrCatalogActionFailed
	}

	// 2. Load and check ownership
	restaurant, err := s.findOwnedRestaurant(ctx, ownerID, restaurantID)
	if err != nil {
		return err
	}

	// 3. Apply the patch
	if req.Name != nil {
		restaurant.Name = *req.Name
	}
	if req.CoverImage != nil {
		restaurant.CoverImage = *req.CoverImage
	}
	if req.Address != nil {
		restaurant.Address = *req.Address
	}
	if req.CategoryName != nil {
		category, err := s.repo.Category.GetOrCreate(ctx, *req.CategoryName)
		if err != nil {
			s.log.Error("Failed to get or create category",
				zap.Error(err), zap.String("category", *req.CategoryName))
			return ErrCatalogActionFailed
		}
		restaurant.CategoryID = &category.ID
	}

	// 4. Persist
	restaurant.UpdatedAt = time.Now()
	if err := s.repo.Restaurant.Update(ctx, restaurant); err != nil {
		s.log.Error("Failed to update restaurant",
			zap.Error(err), zap.String("restaurant_id", restaurant.ID.String()))
		return ErrCatalogActionFailed
	}

	s.log.Info("Restaurant updated", zap.String("restaurant_id", restaurant.ID.String()))
	return nil
}

func (s *restaurantService) DeleteRestaurant(ctx context.Context, ownerID uuid.UUID, restaurantID string) error {
	restaurant, err := s.findOwnedRestaurant(ctx, ownerID, restaurantID)
	if err != nil {
		return err
	}

	if err := s.repo.Restaurant.Delete(ctx, restaurant.ID); err != nil {
		s.log.Error("Failed to delete restaurant",
			zap.Error(err), zap.String("restaurant_id", restaurant.ID.String()))
		return ErrCatalogActionFailed
	}

	return nil
}

func (s *restaurantService) GetRestaurants(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.RestaurantResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	restaurants, err := s.repo.Restaurant.FindAll(ctx, limit, offset)
	if err != nil {
		s.log.Error("Failed to get restaurants", zap.Error(err), zap.Int("page", req.Page))
		return nil, ErrCatalogActionFailed
	}

	total, err := s.repo.Restaurant.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count restaurants", zap.Error(err))
		return nil, ErrCatalogActionFailed
	}

	return response.NewPaginatedResponse(toRestaurantResponses(restaurants), req.Page, req.PerPage, total), nil
}

func (s *restaurantService) GetRestaurantByID(ctx context.Context, restaurantID string) (*response.RestaurantDetailResponse, error) {
	id, err := uuid.Parse(restaurantID)
	if err != nil {
		s.log.Warn("Invalid restaurant ID", zap.String("restaurant_id", restaurantID))
		return nil, ErrRestaurantNotFound
	}

	restaurant, err := s.repo.Restaurant.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get restaurant", zap.Error(err), zap.String("restaurant_id", restaurantID))
		return nil, ErrCatalogActionFailed
	}
	if restaurant == nil {
		return nil, ErrRestaurantNotFound
	}

	// Load the menu alongside the restaurant
	dishes, err := s.repo.Dish.FindByRestaurant(ctx, restaurant.ID)
	if err != nil {
		s.log.Error("Failed to get menu", zap.Error(err), zap.String("restaurant_id", restaurantID))
		return nil, ErrCatalogActionFailed
	}

	menu := make([]response.DishResponse, len(dishes))
	for i, dish := range dishes {
		menu[i] = response.DishToResponse(dish)
	}

	return &response.RestaurantDetailResponse{
		RestaurantResponse: response.RestaurantToResponse(restaurant),
		Menu:               menu,
	}, nil
}

func (s *restaurantService) SearchRestaurants(ctx context.Context, search string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.RestaurantResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	restaurants, err := s.repo.Restaurant.SearchByName(ctx, search, limit, offset)
	if err != nil {
		s.log.Error("Failed to search restaurants", zap.Error(err), zap.String("search", search))
		return nil, ErrCatalogActionFailed
	}

	total, err := s.repo.Restaurant.CountByName(ctx, search)
	if err != nil {
		s.log.Error("Failed to count search results", zap.Error(err), zap.String("search", search))
		return nil, ErrCatalogActionFailed
	}

	return response.NewPaginatedResponse(toRestaurantResponses(restaurants), req.Page, req.PerPage, total), nil
}

func (s *restaurantService) GetAllCategories(ctx context.Context) ([]response.CategoryResponse, error) {
	categories, err := s.repo.Category.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get categories", zap.Error(err))
		return nil, ErrCatalogActionFailed
	}

	categoryResponses := make([]response.CategoryResponse, len(categories))
	for i, category := range categories {
		count, err := s.repo.Restaurant.CountByCategory(ctx, category.ID)
		if err != nil {
			s.log.Warn("Failed to count restaurants for category",
				zap.Error(err), zap.String("category_id", category.ID.String()))
			count = 0
		}
		categoryResponses[i] = response.CategoryToResponse(category, count)
	}

	return categoryResponses, nil
}

func (s *restaurantService) GetCategoryBySlug(ctx context.Context, slug string, req *request.PaginatedRequest) (*response.CategoryResponse, *response.PaginatedResponse[response.RestaurantResponse], error) {
	category, err := s.repo.Category.FindBySlug(ctx, slug)
	if err != nil {
		s.log.Error("Failed to get category", zap.Error(err), zap.String("slug", slug))
		return nil, nil, ErrCatalogActionFailed
	}
	if category == nil {
		return nil, nil, ErrCategoryNotFound
	}

	limit := req.Limit()
	offset := req.Offset()

	restaurants, err := s.repo.Restaurant.FindByCategory(ctx, category.ID, limit, offset)
	if err != nil {
		s.log.Error("Failed to get restaurants for category",
			zap.Error(err), zap.String("slug", slug))
		return nil, nil, ErrCatalogActionFailed
	}

	total, err := s.repo.Restaurant.CountByCategory(ctx, category.ID)
	if err != nil {
		s.log.Error("Failed to count restaurants for category",
			zap.Error(err), zap.String("slug", slug))
		return nil, nil, ErrCatalogActionFailed
	}

	categoryResponse := response.CategoryToResponse(category, total)
	restaurantPage := response.NewPaginatedResponse(toRestaurantResponses(restaurants), req.Page, req.PerPage, total)

	return &categoryResponse, restaurantPage, nil
}

func (s *restaurantService) CreateDish(ctx context.Context, ownerID uuid.UUID, req *request.CreateDishRequest) (*response.DishResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create dish validation failed", zap.Any("errors", errs))
		return nil, ErrCatalogActionFailed
	}

	// 2. The target restaurant must exist and belong to the caller
	restaurant, err := s.findOwnedRestaurant(ctx, ownerID, req.RestaurantID)
	if err != nil {
		return nil, err
	}

	// 3. Create dish entity
	now := time.Now()
	dish := &entity.Dish{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         req.Name,
		Price:        req.Price,
		Photo:        req.Photo,
		Description:  req.Description,
		Options:      req.Options,
		RestaurantID: restaurant.ID,
	}

	if err := s.repo.Dish.Create(ctx, dish); err != nil {
		s.log.Error("Failed to create dish",
			zap.Error(err), zap.String("restaurant_id", restaurant.ID.String()))
		return nil, ErrCatalogActionFailed
	}

	s.log.Info("Dish created",
		zap.String("dish_id", dish.ID.String()),
		zap.String("restaurant_id", restaurant.ID.String()))

	resp := response.DishToResponse(dish)
	return &resp, nil
}

func (s *restaurantService) EditDish(ctx context.Context, ownerID uuid.UUID, dishID string, req *request.EditDishRequest) error {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Edit dish validation failed", zap.Any("errors", errs))
		return ErrCatalogActionFailed
	}

	// 2. Load dish and check ownership through its restaurant
	dish, err := s.findOwnedDish(ctx, ownerID, dishID)
	if err != nil {
		return err
	}

	// 3. Apply the patch
	if req.Name != nil {
		dish.Name = *req.Name
	}
	if req.Price != nil {
		dish.Price = *req.Price
	}
	if req.Photo != nil {
		dish.Photo = req.Photo
	}
	if req.Description != nil {
		dish.Description = *req.Description
	}
	if req.Options != nil {
		dish.Options = req.Options
	}

	// 4. Persist
	dish.UpdatedAt = time.Now()
	if err := s.repo.Dish.Update(ctx, dish); err != nil {
		s.log.Error("Failed to update dish", zap.Error(err), zap.String("dish_id", dish.ID.String()))
		return ErrCatalogActionFailed
	}

	s.log.Info("Dish updated", zap.String("dish_id", dish.ID.String()))
	return nil
}

func (s *restaurantService) DeleteDish(ctx context.Context, ownerID uuid.UUID, dishID string) error {
	dish, err := s.findOwnedDish(ctx, ownerID, dishID)
	if err != nil {
		return err
	}

	if err := s.repo.Dish.Delete(ctx, dish.ID); err != nil {
		s.log.Error("Failed to delete dish", zap.Error(err), zap.String("dish_id", dish.ID.String()))
		return ErrCatalogActionFailed
	}

	return nil
}

// ==================== HELPER METHODS ====================

// findOwnedRestaurant loads a restaurant and verifies the caller owns it.
// Ownership mismatch is an explicit denial, not a fault.
func (s *restaurantService) findOwnedRestaurant(ctx context.Context, ownerID uuid.UUID, restaurantID string) (*entity.Restaurant, error) {
	id, err := uuid.Parse(restaurantID)
	if err != nil {
		s.log.Warn("Invalid restaurant ID", zap.String("restaurant_id", restaurantID))
		return nil, ErrRestaurantNotFound
	}

	restaurant, err := s.repo.Restaurant.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to load restaurant", zap.Error(err), zap.String("restaurant_id", restaurantID))
		return nil, ErrCatalogActionFailed
	}
	if restaurant == nil {
		return nil, ErrRestaurantNotFound
	}

	if restaurant.OwnerID != ownerID {
		s.log.Warn("Ownership check failed",
			zap.String("restaurant_id", restaurantID),
			zap.String("owner_id", restaurant.OwnerID.String()),
			zap.String("caller_id", ownerID.String()))
		return nil, ErrNotRestaurantOwner
	}

	return restaurant, nil
}

func (s *restaurantService) findOwnedDish(ctx context.Context, ownerID uuid.UUID, dishID string) (*entity.Dish, error) {
	id, err := uuid.Parse(dishID)
	if err != nil {
		s.log.Warn("Invalid dish ID", zap.String("dish_id", dishID))
		return nil, ErrDishNotFound
	}

	dish, err := s.repo.Dish.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to load dish", zap.Error(err), zap.String("dish_id", dishID))
		return nil, ErrCatalogActionFailed
	}
	if dish == nil {
		return nil, ErrDishNotFound
	}

	// Ownership flows through the restaurant the dish belongs to
	if _, err := s.findOwnedRestaurant(ctx, ownerID, dish.RestaurantID.String()); err != nil {
		return nil, err
	}

	return dish, nil
}

func toRestaurantResponses(restaurants []*entity.Restaurant) []response.RestaurantResponse {
	restaurantResponses := make([]response.RestaurantResponse, len(restaurants))
	for i, restaurant := range restaurants {
		restaurantResponses[i] = response.RestaurantToResponse(restaurant)
	}
	return restaurantResponses
}
