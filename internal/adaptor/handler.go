package adaptor

import (
	"food-ordering/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Account    *AccountHandler
	Restaurant *RestaurantHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Account:    NewAccountHandler(service.Account, log),
		Restaurant: NewRestaurantHandler(service.Restaurant, log),
	}
}
