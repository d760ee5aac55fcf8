package repository

import (
	"context"
	"fmt"

	"food-ordering/internal/data/entity"
	"food-ordering/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type DishRepository interface {
	Create(ctx context.Context, dish *entity.Dish) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Dish, error)
	FindByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entity.Dish, error)
	Update(ctx context.Context, dish *entity.Dish) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type dishRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewDishRepository(db database.PgxIface, log *zap.Logger) DishRepository {
	return &dishRepository{
		db:  db,
		log: log.With(zap.String("repository", "dish")),
	}
}

func (dr *dishRepository) Create(ctx context.Context, dish *entity.Dish) error {
	query := `
		INSERT INTO dishes (id, name, price, photo, description, options,
		                    restaurant_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := dr.db.Exec(ctx, query,
		dish.ID,
		dish.Name,
		dish.Price,
		dish.Photo,
		dish.Description,
		dish.Options,
		dish.RestaurantID,
		dish.CreatedAt,
		dish.UpdatedAt,
	)

	if err != nil {
		dr.log.Error("Failed to create dish",
			zap.Error(err),
			zap.String("name", dish.Name),
			zap.String("restaurant_id", dish.RestaurantID.String()),
		)
		return fmt.Errorf("create dish %s: %w", dish.Name, err)
	}

	return nil
}

func (dr *dishRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Dish, error) {
	query := `
		SELECT id, name, price, photo, description, options, restaurant_id,
		       created_at, updated_at, deleted_at
		FROM dishes
		WHERE id = $1 AND deleted_at IS NULL
	`

	var dish entity.Dish
	err := dr.db.QueryRow(ctx, query, id).Scan(
		&dish.ID,
		&dish.Name,
		&dish.Price,
		&dish.Photo,
		&dish.Description,
		&dish.Options,
		&dish.RestaurantID,
		&dish.CreatedAt,
		&dish.UpdatedAt,
		&dish.DeletedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		dr.log.Error("Failed to find dish by ID",
			zap.Error(err),
			zap.String("dish_id", id.String()),
		)
		return nil, fmt.Errorf("find dish by ID %s: %w", id.String(), err)
	}

	return &dish, nil
}

// FindByRestaurant returns a restaurant's full menu
func (dr *dishRepository) FindByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entity.Dish, error) {
	query := `
		SELECT id, name, price, photo, description, options, restaurant_id,
		       created_at, updated_at
		FROM dishes
		WHERE restaurant_id = $1 AND deleted_at IS NULL
		ORDER BY created_at ASC
	`

	rows, err := dr.db.Query(ctx, query, restaurantID)
	if err != nil {
		dr.log.Error("Failed to get dishes for restaurant",
			zap.Error(err),
			zap.String("restaurant_id", restaurantID.String()),
		)
		return nil, fmt.Errorf("find dishes for restaurant %s: %w", restaurantID.String(), err)
	}
	defer rows.Close()

	var dishes []*entity.Dish
	for rows.Next() {
		var dish entity.Dish
		err := rows.Scan(
			&dish.ID,
			&dish.Name,
			&dish.Price,
			&dish.Photo,
			&dish.Description,
			&dish.Options,
			&dish.RestaurantID,
			&dish.CreatedAt,
			&dish.UpdatedAt,
		)
		if err != nil {
			dr.log.Error("Failed to scan dish row", zap.Error(err))
			return nil, fmt.Errorf("scan dish row: %w", err)
		}
		dishes = append(dishes, &dish)
	}

	if err := rows.Err(); err != nil {
		dr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate dishes rows: %w", err)
	}

	return dishes, nil
}

func (dr *dishRepository) Update(ctx context.Context, dish *entity.Dish) error {
	query := `
		UPDATE dishes
		SET name = $2, price = $3, photo = $4, description = $5, options = $6,
		    updated_at = $7
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := dr.db.Exec(ctx, query,
		dish.ID,
		dish.Name,
		dish.Price,
		dish.Photo,
		dish.Description,
		dish.Options,
		dish.UpdatedAt,
	)

	if err != nil {
		dr.log.Error("Failed to update dish",
			zap.Error(err),
			zap.String("dish_id", dish.ID.String()),
		)
		return fmt.Errorf("update dish %s: %w", dish.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("dish %s not found or already deleted", dish.ID.String())
	}

	return nil
}

func (dr *dishRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE dishes SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := dr.db.Exec(ctx, query, id)
	if err != nil {
		dr.log.Error("Failed to delete dish",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete dish %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("dish %s not found", id.String())
	}

	dr.log.Info("Dish deleted", zap.String("id", id.String()))
	return nil
}
