package response

import (
	"time"

	"food-ordering/internal/data/entity"
)

type UserResponse struct {
	ID        string          `json:"id"`
	Email     string          `json:"email"`
	Role      entity.UserRole `json:"role"`
	Verified  bool            `json:"verified"`
	CreatedAt time.Time       `json:"created_at"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// Helper converter
func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		Role:      user.Role,
		Verified:  user.Verified,
		CreatedAt: user.CreatedAt,
	}
}
