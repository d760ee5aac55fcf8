package entity

import (
	"github.com/google/uuid"
)

// Verification is a pending email-verification code. A user has at most
// one active verification; it is consumed (deleted) exactly once when the
// code is presented.
type Verification struct {
	BaseSimple
	UserID uuid.UUID `db:"user_id"`
	Code   string    `db:"code"`
}
