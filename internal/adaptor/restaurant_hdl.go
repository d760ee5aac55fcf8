package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"food-ordering/internal/dto/request"
	"food-ordering/internal/usecase"
	"food-ordering/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type RestaurantHandler struct {
	service usecase.RestaurantService
	log     *zap.Logger
}

func NewRestaurantHandler(service usecase.RestaurantService, log *zap.Logger) *RestaurantHandler {
	return &RestaurantHandler{
		service: service,
		log:     log,
	}
}

// GetRestaurants handles GET /api/restaurants?page=1&per_page=10
func (h *RestaurantHandler) GetRestaurants(w http.ResponseWriter, r *http.Request) {
	req := paginationFromQuery(r)

	resp, err := h.service.GetRestaurants(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "get restaurants")
		return
	}

	utils.ResponseSuccess(w, "Restaurants retrieved", resp)
}

// GetRestaurantByID handles GET /api/restaurants/{id}
func (h *RestaurantHandler) GetRestaurantByID(w http.ResponseWriter, r *http.Request) {
	restaurantID := chi.URLParam(r, "id")

	resp, err := h.service.GetRestaurantByID(r.Context(), restaurantID)
	if err != nil {
		h.handleServiceError(w, err, "get restaurant")
		return
	}

	utils.ResponseSuccess(w, "Restaurant retrieved", resp)
}

// SearchRestaurants handles GET /api/restaurants/search?q=term
func (h *RestaurantHandler) SearchRestaurants(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("q")
	if search == "" {
		utils.ResponseBadRequest(w, "Missing search term", nil)
		return
	}

	req := paginationFromQuery(r)

	resp, err := h.service.SearchRestaurants(r.Context(), search, &req)
	if err != nil {
		h.handleServiceError(w, err, "search restaurants")
		return
	}

	utils.ResponseSuccess(w, "Restaurants retrieved", resp)
}

// GetAllCategories handles GET /api/categories
func (h *RestaurantHandler) GetAllCategories(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetAllCategories(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get categories")
		return
	}

	utils.ResponseSuccess(w, "Categories retrieved", resp)
}

// GetCategoryBySlug handles GET /api/categories/{slug}
func (h *RestaurantHandler) GetCategoryBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	req := paginationFromQuery(r)

	category, restaurants, err := h.service.GetCategoryBySlug(r.Context(), slug, &req)
	if err != nil {
		h.handleServiceError(w, err, "get category")
		return
	}

	utils.ResponseSuccess(w, "Category retrieved", map[string]any{
		"category":    category,
		"restaurants": restaurants,
	})
}

// CreateRestaurant handles POST /api/restaurants
func (h *RestaurantHandler) CreateRestaurant(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateRestaurantRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.CreateRestaurant(r.Context(), ownerID, &req)
	if err != nil {
		h.handleServiceError(w, err, "create restaurant")
		return
	}

	utils.ResponseCreated(w, "Restaurant created", resp)
}

// EditRestaurant handles PUT /api/restaurants/{id}
func (h *RestaurantHandler) EditRestaurant(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.EditRestaurantRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.EditRestaurant(r.Context(), ownerID, chi.URLParam(r, "id"), &req); err != nil {
		h.handleServiceError(w, err, "edit restaurant")
		return
	}

	utils.ResponseSuccess(w, "Restaurant updated", nil)
}

// DeleteRestaurant handles DELETE /api/restaurants/{id}
func (h *RestaurantHandler) DeleteRestaurant(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.DeleteRestaurant(r.Context(), ownerID, chi.URLParam(r, "id")); err != nil {
		h.handleServiceError(w, err, "delete restaurant")
		return
	}

	utils.ResponseSuccess(w, "Restaurant deleted", nil)
}

// CreateDish handles POST /api/dishes
func (h *RestaurantHandler) CreateDish(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateDishRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.CreateDish(r.Context(), ownerID, &req)
	if err != nil {
		h.handleServiceError(w, err, "create dish")
		return
	}

	utils.ResponseCreated(w, "Dish created", resp)
}

// EditDish handles PUT /api/dishes/{id}
func (h *RestaurantHandler) EditDish(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.EditDishRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.EditDish(r.Context(), ownerID, chi.URLParam(r, "id"), &req); err != nil {
		h.handleServiceError(w, err, "edit dish")
		return
	}

	utils.ResponseSuccess(w, "Dish updated", nil)
}

// DeleteDish handles DELETE /api/dishes/{id}
func (h *RestaurantHandler) DeleteDish(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.DeleteDish(r.Context(), ownerID, chi.URLParam(r, "id")); err != nil {
		h.handleServiceError(w, err, "delete dish")
		return
	}

	utils.ResponseSuccess(w, "Dish deleted", nil)
}

func paginationFromQuery(r *http.Request) request.PaginatedRequest {
	return request.PaginatedRequest{
		Page:    utils.ParseInt(r.URL.Query().Get("page"), 1),
		PerPage: utils.ParseInt(r.URL.Query().Get("per_page"), 10),
	}
}

// handleServiceError maps service sentinels onto HTTP responses
func (h *RestaurantHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrRestaurantNotFound),
		errors.Is(err, usecase.ErrCategoryNotFound),
		errors.Is(err, usecase.ErrDishNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrNotRestaurantOwner):
		h.log.Warn(operation+" failed - not owner", zap.Error(err))
		utils.ResponseForbidden(w, err.Error())

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
