package usecase

import (
	"context"
	"testing"

	"food-ordering/internal/data/entity"
	"food-ordering/internal/data/repository"
	"food-ordering/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRestaurantFixture(t *testing.T) (*mockRestaurantRepo, *mockCategoryRepo, *mockDishRepo, RestaurantService) {
	t.Helper()

	restaurants := new(mockRestaurantRepo)
	categories := new(mockCategoryRepo)
	dishes := new(mockDishRepo)

	repo := &repository.Repository{
		Restaurant: restaurants,
		Category:   categories,
		Dish:       dishes,
	}

	service := NewRestaurantService(repo, zap.NewNop())
	return restaurants, categories, dishes, service
}

func TestCreateRestaurant(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	category := &entity.Category{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()},
		Name:         "Korean BBQ",
		Slug:         "korean-bbq",
	}

	t.Run("creates restaurant owned by the caller", func(t *testing.T) {
		restaurants, categories, _, service := newRestaurantFixture(t)

		categories.On("GetOrCreate", ctx, "Korean BBQ").Return(category, nil).Once()

		var created *entity.Restaurant
		restaurants.On("Create", ctx, mock.AnythingOfType("*entity.Restaurant")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*entity.Restaurant)
			}).
			Return(nil).Once()

		resp, err := service.CreateRestaurant(ctx, ownerID, &request.CreateRestaurantRequest{
			Name:         "Seoul Kitchen",
			CoverImage:   "https://cdn.example.com/seoul.jpg",
			Address:      "12 Main Street",
			CategoryName: "Korean BBQ",
		})
		require.NoError(t, err)

		require.NotNil(t, created)
		assert.Equal(t, ownerID, created.OwnerID)
		require.NotNil(t, created.CategoryID)
		assert.Equal(t, category.ID, *created.CategoryID)
		assert.Equal(t, "Seoul Kitchen", resp.Name)
	})

	t.Run("rejects invalid input before touching storage", func(t *testing.T) {
		restaurants, categories, _, service := newRestaurantFixture(t)

		_, err := service.CreateRestaurant(ctx, ownerID, &request.CreateRestaurantRequest{
			Name: "X", // too short, and everything else missing
		})
		assert.ErrorIs(t, err, ErrCatalogActionFailed)

		categories.AssertNotCalled(t, "GetOrCreate", mock.Anything, mock.Anything)
		restaurants.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestEditRestaurantOwnership(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	restaurant := &entity.Restaurant{
		Base:    entity.Base{ID: uuid.New()},
		Name:    "Seoul Kitchen",
		Address: "12 Main Street",
		OwnerID: ownerID,
	}

	t.Run("owner can edit", func(t *testing.T) {
		restaurants, _, _, service := newRestaurantFixture(t)

		restaurants.On("FindByID", ctx, restaurant.ID).Return(restaurant, nil).Once()

		var updated *entity.Restaurant
		restaurants.On("Update", ctx, mock.AnythingOfType("*entity.Restaurant")).
			Run(func(args mock.Arguments) {
				updated = args.Get(1).(*entity.Restaurant)
			}).
			Return(nil).Once()

		err := service.EditRestaurant(ctx, ownerID, restaurant.ID.String(), &request.EditRestaurantRequest{
			Name: strptr("Seoul Kitchen II"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Seoul Kitchen II", updated.Name)
	})

	t.Run("someone else is denied", func(t *testing.T) {
		restaurants, _, _, service := newRestaurantFixture(t)

		restaurants.On("FindByID", ctx, restaurant.ID).Return(restaurant, nil).Once()

		err := service.EditRestaurant(ctx, uuid.New(), restaurant.ID.String(), &request.EditRestaurantRequest{
			Name: strptr("Hijacked"),
		})
		assert.ErrorIs(t, err, ErrNotRestaurantOwner)
		restaurants.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("unknown restaurant", func(t *testing.T) {
		restaurants, _, _, service := newRestaurantFixture(t)

		id := uuid.New()
		restaurants.On("FindByID", ctx, id).Return(nil, nil).Once()

		err := service.EditRestaurant(ctx, ownerID, id.String(), &request.EditRestaurantRequest{
			Name: strptr("Ghost"),
		})
		assert.ErrorIs(t, err, ErrRestaurantNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		restaurants, _, _, service := newRestaurantFixture(t)

		err := service.EditRestaurant(ctx, ownerID, "not-a-uuid", &request.EditRestaurantRequest{
			Name: strptr("Whatever"),
		})
		assert.ErrorIs(t, err, ErrRestaurantNotFound)
		restaurants.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})
}

func TestDishOwnership(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	restaurant := &entity.Restaurant{
		Base:    entity.Base{ID: uuid.New()},
		Name:    "Seoul Kitchen",
		OwnerID: ownerID,
	}
	dish := &entity.Dish{
		Base:         entity.Base{ID: uuid.New()},
		Name:         "Bibimbap",
		Price:        12,
		Description:  "Rice bowl with vegetables",
		RestaurantID: restaurant.ID,
	}

	t.Run("create dish requires owning the restaurant", func(t *testing.T) {
		restaurants, _, dishes, service := newRestaurantFixture(t)

		restaurants.On("FindByID", ctx, restaurant.ID).Return(restaurant, nil).Once()

		_, err := service.CreateDish(ctx, uuid.New(), &request.CreateDishRequest{
			RestaurantID: restaurant.ID.String(),
			Name:         "Bibimbap",
			Price:        12,
			Description:  "Rice bowl with vegetables",
		})
		assert.ErrorIs(t, err, ErrNotRestaurantOwner)
		dishes.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("delete dish checks ownership through the restaurant", func(t *testing.T) {
		restaurants, _, dishes, service := newRestaurantFixture(t)

		dishes.On("FindByID", ctx, dish.ID).Return(dish, nil).Once()
		restaurants.On("FindByID", ctx, restaurant.ID).Return(restaurant, nil).Once()
		dishes.On("Delete", ctx, dish.ID).Return(nil).Once()

		err := service.DeleteDish(ctx, ownerID, dish.ID.String())
		assert.NoError(t, err)
		dishes.AssertExpectations(t)
	})

	t.Run("edit dish by a stranger is denied", func(t *testing.T) {
		restaurants, _, dishes, service := newRestaurantFixture(t)

		dishes.On("FindByID", ctx, dish.ID).Return(dish, nil).Once()
		restaurants.On("FindByID", ctx, restaurant.ID).Return(restaurant, nil).Once()

		err := service.EditDish(ctx, uuid.New(), dish.ID.String(), &request.EditDishRequest{
			Price: intptr(15),
		})
		assert.ErrorIs(t, err, ErrNotRestaurantOwner)
		dishes.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("unknown dish", func(t *testing.T) {
		_, _, dishes, service := newRestaurantFixture(t)

		id := uuid.New()
		dishes.On("FindByID", ctx, id).Return(nil, nil).Once()

		err := service.DeleteDish(ctx, ownerID, id.String())
		assert.ErrorIs(t, err, ErrDishNotFound)
	})
}

func TestGetRestaurantByID(t *testing.T) {
	ctx := context.Background()

	restaurant := &entity.Restaurant{
		Base: entity.Base{ID: uuid.New()},
		Name: "Seoul Kitchen",
	}

	t.Run("includes the menu", func(t *testing.T) {
		restaurants, _, dishes, service := newRestaurantFixture(t)

		restaurants.On("FindByID", ctx, restaurant.ID).Return(restaurant, nil).Once()
		dishes.On("FindByRestaurant", ctx, restaurant.ID).Return([]*entity.Dish{
			{Base: entity.Base{ID: uuid.New()}, Name: "Bibimbap", Price: 12, RestaurantID: restaurant.ID},
			{Base: entity.Base{ID: uuid.New()}, Name: "Kimchi Stew", Price: 14, RestaurantID: restaurant.ID},
		}, nil).Once()

		resp, err := service.GetRestaurantByID(ctx, restaurant.ID.String())
		require.NoError(t, err)
		assert.Equal(t, "Seoul Kitchen", resp.Name)
		require.Len(t, resp.Menu, 2)
		assert.Equal(t, "Bibimbap", resp.Menu[0].Name)
	})

	t.Run("unknown restaurant", func(t *testing.T) {
		restaurants, _, _, service := newRestaurantFixture(t)

		id := uuid.New()
		restaurants.On("FindByID", ctx, id).Return(nil, nil).Once()

		_, err := service.GetRestaurantByID(ctx, id.String())
		assert.ErrorIs(t, err, ErrRestaurantNotFound)
	})
}

func TestGetCategoryBySlug(t *testing.T) {
	ctx := context.Background()

	category := &entity.Category{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()},
		Name:         "Korean BBQ",
		Slug:         "korean-bbq",
	}

	t.Run("returns category with its restaurants", func(t *testing.T) {
		restaurants, categories, _, service := newRestaurantFixture(t)

		categories.On("FindBySlug", ctx, "korean-bbq").Return(category, nil).Once()
		restaurants.On("FindByCategory", ctx, category.ID, 10, 0).Return([]*entity.Restaurant{
			{Base: entity.Base{ID: uuid.New()}, Name: "Seoul Kitchen", CategoryID: &category.ID},
		}, nil).Once()
		restaurants.On("CountByCategory", ctx, category.ID).Return(int64(1), nil).Once()

		categoryResp, page, err := service.GetCategoryBySlug(ctx, "korean-bbq", &request.PaginatedRequest{Page: 1, PerPage: 10})
		require.NoError(t, err)
		assert.Equal(t, "korean-bbq", categoryResp.Slug)
		assert.Equal(t, int64(1), categoryResp.RestaurantCount)
		require.Len(t, page.Data, 1)
		assert.Equal(t, "Seoul Kitchen", page.Data[0].Name)
	})

	t.Run("unknown slug", func(t *testing.T) {
		_, categories, _, service := newRestaurantFixture(t)

		categories.On("FindBySlug", ctx, "no-such-cuisine").Return(nil, nil).Once()

		_, _, err := service.GetCategoryBySlug(ctx, "no-such-cuisine", &request.PaginatedRequest{Page: 1, PerPage: 10})
		assert.ErrorIs(t, err, ErrCategoryNotFound)
	})
}

func intptr(i int) *int { return &i }
