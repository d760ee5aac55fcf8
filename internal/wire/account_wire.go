package wire

import (
	"food-ordering/internal/adaptor"
	"food-ordering/internal/data/repository"
	"food-ordering/pkg/middleware"
	"food-ordering/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAccount(
	r chi.Router,
	accountHandler *adaptor.AccountHandler,
	repo *repository.Repository,
	tokens token.Service,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// Account creation, login and email verification need no token
	r.Post("/api/accounts", accountHandler.CreateAccount)
	r.Post("/api/login", accountHandler.Login)
	r.Post("/api/verify-email", accountHandler.VerifyEmail)

	// ==================== PROTECTED ROUTES ====================
	// Everything below requires a valid Bearer token
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.AuthJWT(tokens, repo.User, log))

		r.Get("/me", accountHandler.Me)          // GET /api/me
		r.Put("/me", accountHandler.EditProfile) // PUT /api/me

		r.Get("/users", accountHandler.GetAllUsers)      // GET /api/users
		r.Get("/users/{id}", accountHandler.UserProfile) // GET /api/users/{id}
	})
}
