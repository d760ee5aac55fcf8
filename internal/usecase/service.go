package usecase

import (
	"food-ordering/internal/data/repository"
	"food-ordering/pkg/mail"
	"food-ordering/pkg/token"

	"go.uber.org/zap"
)

type Service struct {
	Account    AccountService
	Restaurant RestaurantService
}

// NewService wires the service layer. The token service and mailer are
// built by the caller so the auth middleware can share the same token
// verifier.
func NewService(repo *repository.Repository, tokens token.Service, mailer mail.Mailer, log *zap.Logger) *Service {
	return &Service{
		Account:    NewAccountService(repo, tokens, mailer, log),
		Restaurant: NewRestaurantService(repo, log),
	}
}
