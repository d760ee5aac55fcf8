package request

type CreateRestaurantRequest struct {
	Name         string `json:"name" validate:"required,min=2,max=100"`
	CoverImage   string `json:"cover_image" validate:"required,url"`
	Address      string `json:"address" validate:"required,min=5"`
	CategoryName string `json:"category_name" validate:"required,min=2,max=50"`
}

type EditRestaurantRequest struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	CoverImage   *string `json:"cover_image,omitempty" validate:"omitempty,url"`
	Address      *string `json:"address,omitempty" validate:"omitempty,min=5"`
	CategoryName *string `json:"category_name,omitempty" validate:"omitempty,min=2,max=50"`
}
