package utils

import (
	"github.com/google/uuid"
)

// GenerateVerificationCode creates an opaque one-time code for email
// verification. A random UUID string is unguessable and unique, which is
// all the code needs to be.
func GenerateVerificationCode() string {
	return uuid.New().String()
}
