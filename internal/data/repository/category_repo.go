package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"food-ordering/internal/data/entity"
	"food-ordering/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CategoryRepository interface {
	// GetOrCreate finds a category by its slugified name, creating it when
	// missing
	GetOrCreate(ctx context.Context, name string) (*entity.Category, error)
	FindAll(ctx context.Context) ([]*entity.Category, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Category, error)
}

type categoryRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCategoryRepository(db database.PgxIface, log *zap.Logger) CategoryRepository {
	return &categoryRepository{
		db:  db,
		log: log.With(zap.String("repository", "category")),
	}
}

// Slugify normalizes a category name into its unique slug
// ("Fast Food" -> "fast-food")
func Slugify(name string) string {
	trimmed := strings.ToLower(strings.TrimSpace(name))
	return strings.ReplaceAll(trimmed, " ", "-")
}

func (cr *categoryRepository) GetOrCreate(ctx context.Context, name string) (*entity.Category, error) {
	slug := Slugify(name)

	existing, err := cr.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	now := time.Now()
	category := &entity.Category{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name: strings.TrimSpace(name),
		Slug: slug,
	}

	query := `
		INSERT INTO categories (id, name, slug, cover_image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (slug) DO UPDATE SET updated_at = categories.updated_at
		RETURNING id, name, slug, cover_image, created_at, updated_at
	`

	// Concurrent get-or-create for the same slug resolves to one row
	err = cr.db.QueryRow(ctx, query,
		category.ID,
		category.Name,
		category.Slug,
		category.CoverImage,
		category.CreatedAt,
		category.UpdatedAt,
	).Scan(
		&category.ID,
		&category.Name,
		&category.Slug,
		&category.CoverImage,
		&category.CreatedAt,
		&category.UpdatedAt,
	)

	if err != nil {
		cr.log.Error("Failed to get or create category",
			zap.Error(err),
			zap.String("slug", slug),
		)
		return nil, fmt.Errorf("get or create category %s: %w", slug, err)
	}

	return category, nil
}

func (cr *categoryRepository) FindAll(ctx context.Context) ([]*entity.Category, error) {
	query := `
		SELECT id, name, slug, cover_image, created_at, updated_at
		FROM categories
		ORDER BY name ASC
	`

	rows, err := cr.db.Query(ctx, query)
	if err != nil {
		cr.log.Error("Failed to get all categories", zap.Error(err))
		return nil, fmt.Errorf("find all categories: %w", err)
	}
	defer rows.Close()

	var categories []*entity.Category
	for rows.Next() {
		var category entity.Category
		err := rows.Scan(
			&category.ID,
			&category.Name,
			&category.Slug,
			&category.CoverImage,
			&category.CreatedAt,
			&category.UpdatedAt,
		)
		if err != nil {
			cr.log.Error("Failed to scan category row", zap.Error(err))
			return nil, fmt.Errorf("scan category row: %w", err)
		}
		categories = append(categories, &category)
	}

	if err := rows.Err(); err != nil {
		cr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate categories rows: %w", err)
	}

	return categories, nil
}

func (cr *categoryRepository) FindBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	query := `
		SELECT id, name, slug, cover_image, created_at, updated_at
		FROM categories
		WHERE slug = $1
	`

	var category entity.Category
	err := cr.db.QueryRow(ctx, query, slug).Scan(
		&category.ID,
		&category.Name,
		&category.Slug,
		&category.CoverImage,
		&category.CreatedAt,
		&category.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		cr.log.Error("Failed to find category by slug",
			zap.Error(err),
			zap.String("slug", slug),
		)
		return nil, fmt.Errorf("find category by slug %s: %w", slug, err)
	}

	return &category, nil
}
