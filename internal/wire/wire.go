// internal/wire/wire.go
package wire

import (
	"net/http"

	"food-ordering/internal/adaptor"
	"food-ordering/internal/data/repository"
	"food-ordering/internal/usecase"
	"food-ordering/pkg/mail"
	"food-ordering/pkg/middleware"
	"food-ordering/pkg/token"
	"food-ordering/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	// Initialize shared infrastructure, services and handlers.
	// The token service is shared between the auth middleware and
	// the account service so both verify with the same secret.
	tokens := token.NewService(config.JWT)
	mailer := mail.NewMailer(config.Mail, logger)

	service := usecase.NewService(repo, tokens, mailer, logger)
	handler := adaptor.NewHandler(service, logger)

	// Setup router
	router := setupRouter(handler, repo, tokens, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the Chi router
func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	tokens token.Service,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAccount(r, handler.Account, repo, tokens, logger)
	wireRestaurant(r, handler.Restaurant, repo, tokens, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
