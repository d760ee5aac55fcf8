package usecase

import (
	"context"

	"food-ordering/internal/data/entity"
	"food-ordering/pkg/mail"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// ==================== REPOSITORY MOCKS ====================

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if u := args.Get(0); u != nil {
		return u.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	args := m.Called(ctx, limit, offset)
	if u := args.Get(0); u != nil {
		return u.([]*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockVerificationRepo struct {
	mock.Mock
}

func (m *mockVerificationRepo) Create(ctx context.Context, verification *entity.Verification) error {
	args := m.Called(ctx, verification)
	return args.Error(0)
}

func (m *mockVerificationRepo) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *mockVerificationRepo) Consume(ctx context.Context, code string) (*entity.User, error) {
	args := m.Called(ctx, code)
	if u := args.Get(0); u != nil {
		return u.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockRestaurantRepo struct {
	mock.Mock
}

func (m *mockRestaurantRepo) Create(ctx context.Context, restaurant *entity.Restaurant) error {
	args := m.Called(ctx, restaurant)
	return args.Error(0)
}

func (m *mockRestaurantRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	args := m.Called(ctx, id)
	if r := args.Get(0); r != nil {
		return r.(*entity.Restaurant), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRestaurantRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Restaurant, error) {
	args := m.Called(ctx, limit, offset)
	if r := args.Get(0); r != nil {
		return r.([]*entity.Restaurant), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRestaurantRepo) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRestaurantRepo) FindByCategory(ctx context.Context, categoryID uuid.UUID, limit, offset int) ([]*entity.Restaurant, error) {
	args := m.Called(ctx, categoryID, limit, offset)
	if r := args.Get(0); r != nil {
		return r.([]*entity.Restaurant), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRestaurantRepo) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRestaurantRepo) SearchByName(ctx context.Context, query string, limit, offset int) ([]*entity.Restaurant, error) {
	args := m.Called(ctx, query, limit, offset)
	if r := args.Get(0); r != nil {
		return r.([]*entity.Restaurant), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRestaurantRepo) CountByName(ctx context.Context, query string) (int64, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRestaurantRepo) Update(ctx context.Context, restaurant *entity.Restaurant) error {
	args := m.Called(ctx, restaurant)
	return args.Error(0)
}

func (m *mockRestaurantRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockCategoryRepo struct {
	mock.Mock
}

func (m *mockCategoryRepo) GetOrCreate(ctx context.Context, name string) (*entity.Category, error) {
	args := m.Called(ctx, name)
	if c := args.Get(0); c != nil {
		return c.(*entity.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCategoryRepo) FindAll(ctx context.Context) ([]*entity.Category, error) {
	args := m.Called(ctx)
	if c := args.Get(0); c != nil {
		return c.([]*entity.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCategoryRepo) FindBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	args := m.Called(ctx, slug)
	if c := args.Get(0); c != nil {
		return c.(*entity.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockDishRepo struct {
	mock.Mock
}

func (m *mockDishRepo) Create(ctx context.Context, dish *entity.Dish) error {
	args := m.Called(ctx, dish)
	return args.Error(0)
}

func (m *mockDishRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Dish, error) {
	args := m.Called(ctx, id)
	if d := args.Get(0); d != nil {
		return d.(*entity.Dish), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockDishRepo) FindByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entity.Dish, error) {
	args := m.Called(ctx, restaurantID)
	if d := args.Get(0); d != nil {
		return d.([]*entity.Dish), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockDishRepo) Update(ctx context.Context, dish *entity.Dish) error {
	args := m.Called(ctx, dish)
	return args.Error(0)
}

func (m *mockDishRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// ==================== INFRASTRUCTURE MOCKS ====================

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) Sign(userID uuid.UUID) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

func (m *mockTokenService) Verify(tokenString string) (uuid.UUID, error) {
	args := m.Called(tokenString)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

type mockMailer struct {
	mock.Mock
}

func (m *mockMailer) SendEmail(ctx context.Context, subject, to, template string, vars []mail.Var) bool {
	args := m.Called(ctx, subject, to, template, vars)
	return args.Bool(0)
}

func (m *mockMailer) SendVerificationEmail(ctx context.Context, email, code string) bool {
	args := m.Called(ctx, email, code)
	return args.Bool(0)
}
