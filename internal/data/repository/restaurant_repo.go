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

type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *entity.Restaurant) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Restaurant, error)
	CountAll(ctx context.Context) (int64, error)
	FindByCategory(ctx context.Context, categoryID uuid.UUID, limit, offset int) ([]*entity.Restaurant, error)
	CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)
	SearchByName(ctx context.Context, query string, limit, offset int) ([]*entity.Restaurant, error)
	CountByName(ctx context.Context, query string) (int64, error)
	Update(ctx context.Context, restaurant *entity.Restaurant) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type restaurantRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRestaurantRepository(db database.PgxIface, log *zap.Logger) RestaurantRepository {
	return &restaurantRepository{
		db:  db,
		log: log.With(zap.String("repository", "restaurant")),
	}
}

const restaurantColumns = `id, name, cover_image, address, is_promoted, owner_id, category_id,
       created_at, updated_at, deleted_at`

func scanRestaurant(row pgx.Row) (*entity.Restaurant, error) {
	var restaurant entity.Restaurant
	err := row.Scan(
		&restaurant.ID,
		&restaurant.Name,
		&restaurant.CoverImage,
		&restaurant.Address,
		&restaurant.IsPromoted,
		&restaurant.OwnerID,
		&restaurant.CategoryID,
		&restaurant.CreatedAt,
		&restaurant.UpdatedAt,
		&restaurant.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (rr *restaurantRepository) Create(ctx context.Context, restaurant *entity.Restaurant) error {
	query := `
		INSERT INTO restaurants (id, name, cover_image, address, is_promoted,
		                         owner_id, category_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := rr.db.Exec(ctx, query,
		restaurant.ID,
		restaurant.Name,
		restaurant.CoverImage,
		restaurant.Address,
		restaurant.IsPromoted,
		restaurant.OwnerID,
		restaurant.CategoryID,
		restaurant.CreatedAt,
		restaurant.UpdatedAt,
	)

	if err != nil {
		rr.log.Error("Failed to create restaurant",
			zap.Error(err),
			zap.String("name", restaurant.Name),
			zap.String("owner_id", restaurant.OwnerID.String()),
		)
		return fmt.Errorf("create restaurant %s: %w", restaurant.Name, err)
	}

	return nil
}

func (rr *restaurantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	query := `
		SELECT ` + restaurantColumns + `
		FROM restaurants
		WHERE id = $1 AND deleted_at IS NULL
	`

	restaurant, err := scanRestaurant(rr.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		rr.log.Error("Failed to find restaurant by ID",
			zap.Error(err),
			zap.String("restaurant_id", id.String()),
		)
		return nil, fmt.Errorf("find restaurant by ID %s: %w", id.String(), err)
	}

	return restaurant, nil
}

// FindAll retrieves a page of restaurants, promoted ones first
func (rr *restaurantRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Restaurant, error) {
	query := `
		SELECT ` + restaurantColumns + `
		FROM restaurants
		WHERE deleted_at IS NULL
		ORDER BY is_promoted DESC, created_at DESC
		LIMIT $1 OFFSET $2
	`

	return rr.queryRestaurants(ctx, query, limit, offset)
}

func (rr *restaurantRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM restaurants WHERE deleted_at IS NULL`

	var count int64
	if err := rr.db.QueryRow(ctx, query).Scan(&count); err != nil {
		rr.log.Error("Database error counting restaurants", zap.Error(err))
		return 0, fmt.Errorf("count all restaurants: %w", err)
	}

	return count, nil
}

func (rr *restaurantRepository) FindByCategory(ctx context.Context, categoryID uuid.UUID, limit, offset int) ([]*entity.Restaurant, error) {
	query := `
		SELECT ` + restaurantColumns + `
		FROM restaurants
		WHERE category_id = $1 AND deleted_at IS NULL
		ORDER BY is_promoted DESC, created_at DESC
		LIMIT $2 OFFSET $3
	`

	return rr.queryRestaurants(ctx, query, categoryID, limit, offset)
}

func (rr *restaurantRepository) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM restaurants WHERE category_id = $1 AND deleted_at IS NULL`

	var count int64
	if err := rr.db.QueryRow(ctx, query, categoryID).Scan(&count); err != nil {
		rr.log.Error("Database error counting restaurants by category",
			zap.Error(err),
			zap.String("category_id", categoryID.String()),
		)
		return 0, fmt.Errorf("count restaurants by category %s: %w", categoryID.String(), err)
	}

	return count, nil
}

// SearchByName matches restaurant names case-insensitively
func (rr *restaurantRepository) SearchByName(ctx context.Context, search string, limit, offset int) ([]*entity.Restaurant, error) {
	query := `
		SELECT ` + restaurantColumns + `
		FROM restaurants
		WHERE name ILIKE '%' || $1 || '%' AND deleted_at IS NULL
		ORDER BY is_promoted DESC, created_at DESC
		LIMIT $2 OFFSET $3
	`

	return rr.queryRestaurants(ctx, query, search, limit, offset)
}

func (rr *restaurantRepository) CountByName(ctx context.Context, search string) (int64, error) {
	query := `SELECT COUNT(*) FROM restaurants WHERE name ILIKE '%' || $1 || '%' AND deleted_at IS NULL`

	var count int64
	if err := rr.db.QueryRow(ctx, query, search).Scan(&count); err != nil {
		rr.log.Error("Database error counting restaurants by name",
			zap.Error(err),
			zap.String("search", search),
		)
		return 0, fmt.Errorf("count restaurants by name %q: %w", search, err)
	}

	return count, nil
}

func (rr *restaurantRepository) Update(ctx context.Context, restaurant *entity.Restaurant) error {
	query := `
		UPDATE restaurants
		SET name = $2, cover_image = $3, address = $4, is_promoted = $5,
		    category_id = $6, updated_at = $7
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := rr.db.Exec(ctx, query,
		restaurant.ID,
		restaurant.Name,
		restaurant.CoverImage,
		restaurant.Address,
		restaurant.IsPromoted,
		restaurant.CategoryID,
		restaurant.UpdatedAt,
	)

	if err != nil {
		rr.log.Error("Failed to update restaurant",
			zap.Error(err),
			zap.String("restaurant_id", restaurant.ID.String()),
		)
		return fmt.Errorf("update restaurant %s: %w", restaurant.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("restaurant %s not found or already deleted", restaurant.ID.String())
	}

	return nil
}

func (rr *restaurantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE restaurants SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := rr.db.Exec(ctx, query, id)
	if err != nil {
		rr.log.Error("Failed to delete restaurant",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete restaurant %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("restaurant %s not found", id.String())
	}

	rr.log.Info("Restaurant deleted", zap.String("id", id.String()))
	return nil
}

func (rr *restaurantRepository) queryRestaurants(ctx context.Context, query string, args ...any) ([]*entity.Restaurant, error) {
	rows, err := rr.db.Query(ctx, query, args...)
	if err != nil {
		rr.log.Error("Failed to query restaurants", zap.Error(err))
		return nil, fmt.Errorf("query restaurants: %w", err)
	}
	defer rows.Close()

	var restaurants []*entity.Restaurant
	for rows.Next() {
		restaurant, err := scanRestaurant(rows)
		if err != nil {
			rr.log.Error("Failed to scan restaurant row", zap.Error(err))
			return nil, fmt.Errorf("scan restaurant row: %w", err)
		}
		restaurants = append(restaurants, restaurant)
	}

	if err := rows.Err(); err != nil {
		rr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate restaurants rows: %w", err)
	}

	return restaurants, nil
}
