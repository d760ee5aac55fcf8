package middleware

import (
	"net/http"
	"strings"

	"food-ordering/internal/data/repository"
	"food-ordering/pkg/token"
	"food-ordering/pkg/utils"

	"go.uber.org/zap"
)

// AuthJWT validates the Bearer token and resolves it into an
// authenticated user before the handler runs
func AuthJWT(tokens token.Service, userRepo repository.UserRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Extract token
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			// Verify signature and expiry
			userID, err := tokens.Verify(parts[1])
			if err != nil {
				logger.Warn("Invalid token", zap.Error(err))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			// Resolve the subject into a live user
			user, err := userRepo.FindByID(r.Context(), userID)
			if err != nil {
				logger.Error("Failed to load user for token",
					zap.Error(err), zap.String("user_id", userID.String()))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}
			if user == nil {
				logger.Warn("Token subject no longer exists", zap.String("user_id", userID.String()))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			ctx := utils.SetUserContext(r.Context(), user.ID, string(user.Role))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole rejects callers whose role does not match. Runs after
// AuthJWT, which puts the role into the request context.
func RequireRole(role string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// 1. Get role from context (set by AuthJWT)
			callerRole, ok := utils.GetRoleFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			// 2. Check role
			if callerRole != role {
				logger.Warn("Role check failed",
					zap.String("required", role),
					zap.String("actual", callerRole),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "You are not allowed to do this")
				return
			}

			// 3. Continue to handler
			next.ServeHTTP(w, r)
		})
	}
}
