package usecase

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Business failures are sentinel errors so handlers can map them to HTTP
// statuses with errors.Is instead of string matching. Anything not listed
// here that escapes a service method is a dependency failure already
// downgraded to one of the generic *Failed sentinels.
var (
	// Account
	ErrEmailTaken           = errors.New("there is a user with that email already")
	ErrCreateAccountFailed  = errors.New("could not create account")
	ErrUserNotFound         = errors.New("user not found")
	ErrWrongPassword        = errors.New("wrong password")
	ErrLoginFailed          = errors.New("could not log user in")
	ErrProfileUpdateFailed  = errors.New("could not update profile")
	ErrVerificationNotFound = errors.New("verification not found")
	ErrVerifyEmailFailed    = errors.New("could not verify email")

	// Catalog
	ErrRestaurantNotFound  = errors.New("restaurant not found")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrDishNotFound        = errors.New("dish not found")
	ErrNotRestaurantOwner  = errors.New("you are not the owner of this restaurant")
	ErrCatalogActionFailed = errors.New("could not complete catalog action")
)

// uniqueViolation is the postgres SQLSTATE for a unique constraint breach
const uniqueViolation = "23505"

// isUniqueViolation reports whether err is a postgres unique-constraint
// violation. Duplicate emails are detected this way instead of a prior
// existence check, which closes the check-then-act race.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
