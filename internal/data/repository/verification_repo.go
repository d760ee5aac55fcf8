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

type VerificationRepository interface {
	Create(ctx context.Context, verification *entity.Verification) error
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
	// Consume atomically flips the owning user to verified and deletes the
	// verification row. Returns the owning user, or (nil, nil) when no
	// verification matches the code.
	Consume(ctx context.Context, code string) (*entity.User, error)
}

type verificationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewVerificationRepository(db database.PgxIface, log *zap.Logger) VerificationRepository {
	return &verificationRepository{
		db:  db,
		log: log.With(zap.String("repository", "verification")),
	}
}

func (r *verificationRepository) Create(ctx context.Context, verification *entity.Verification) error {
	query := `
		INSERT INTO verifications (id, user_id, code, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query,
		verification.ID,
		verification.UserID,
		verification.Code,
		verification.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create verification",
			zap.Error(err),
			zap.String("user_id", verification.UserID.String()),
		)
		return fmt.Errorf("create verification for user %s: %w", verification.UserID.String(), err)
	}

	return nil
}

// DeleteByUserID removes any pending verification for a user. Called
// before issuing a fresh code so at most one verification is active.
func (r *verificationRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	query := `DELETE FROM verifications WHERE user_id = $1`

	_, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to delete verifications for user",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return fmt.Errorf("delete verifications for user %s: %w", userID.String(), err)
	}

	return nil
}

func (r *verificationRepository) Consume(ctx context.Context, code string) (*entity.User, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin consume transaction", zap.Error(err))
		return nil, fmt.Errorf("begin consume transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Lock the verification row so two concurrent attempts with the same
	// code cannot both proceed
	query := `
		SELECT v.id, u.id, u.email, u.password, u.role, u.verified, u.created_at, u.updated_at, u.deleted_at
		FROM verifications v
		JOIN users u ON u.id = v.user_id
		WHERE v.code = $1
		FOR UPDATE OF v
	`

	var verificationID uuid.UUID
	var user entity.User
	err = tx.QueryRow(ctx, query, code).Scan(
		&verificationID,
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.Verified,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.DeletedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find verification with owner", zap.Error(err))
		return nil, fmt.Errorf("find verification with owner: %w", err)
	}

	// User update must be durable before the code disappears; both happen
	// in the same transaction, so a failure leaves the code intact
	if _, err := tx.Exec(ctx,
		`UPDATE users SET verified = true, updated_at = NOW() WHERE id = $1`,
		user.ID,
	); err != nil {
		r.log.Error("Failed to mark user verified",
			zap.Error(err),
			zap.String("user_id", user.ID.String()),
		)
		return nil, fmt.Errorf("mark user %s verified: %w", user.ID.String(), err)
	}

	if _, err := tx.Exec(ctx,
		`DELETE FROM verifications WHERE id = $1`,
		verificationID,
	); err != nil {
		r.log.Error("Failed to delete consumed verification",
			zap.Error(err),
			zap.String("verification_id", verificationID.String()),
		)
		return nil, fmt.Errorf("delete verification %s: %w", verificationID.String(), err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit consume transaction", zap.Error(err))
		return nil, fmt.Errorf("commit consume transaction: %w", err)
	}

	user.Verified = true
	return &user, nil
}
