package request

type CreateAccountRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=client owner delivery"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// EditProfileRequest is a patch: only supplied fields are changed. An email
// change resets verification; a password change rehashes. Both may be
// combined in one request.
type EditProfileRequest struct {
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=6"`
}

type VerifyEmailRequest struct {
	Code string `json:"code" validate:"required"`
}
