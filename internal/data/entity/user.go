package entity

type UserRole string

const (
	RoleClient   UserRole = "client"
	RoleOwner    UserRole = "owner"
	RoleDelivery UserRole = "delivery"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleClient, RoleOwner, RoleDelivery:
		return true
	}
	return false
}

type User struct {
	Base
	Email        string   `db:"email"`
	PasswordHash string   `db:"password"`
	Role         UserRole `db:"role"`
	Verified     bool     `db:"verified"`
}
