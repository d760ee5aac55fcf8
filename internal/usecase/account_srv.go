package usecase

import (
	"context"
	"time"

	"food-ordering/internal/data/entity"
	"food-ordering/internal/data/repository"
	"food-ordering/internal/dto/request"
	"food-ordering/internal/dto/response"
	"food-ordering/pkg/mail"
	"food-ordering/pkg/token"
	"food-ordering/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AccountService interface {
	CreateAccount(ctx context.Context, req *request.CreateAccountRequest) error
	Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
	FindByID(ctx context.Context, userID string) (*response.UserResponse, error)
	GetAllUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error)
	EditProfile(ctx context.Context, userID uuid.UUID, req *request.EditProfileRequest) error
	VerifyEmail(ctx context.Context, code string) error
}

type accountService struct {
	repo   *repository.Repository // grouping userRepo & verificationRepo
	tokens token.Service
	mailer mail.Mailer
	log    *zap.Logger
}

func NewAccountService(
	repo *repository.Repository,
	tokens token.Service,
	mailer mail.Mailer,
	log *zap.Logger,
) AccountService {
	return &accountService{
		repo:   repo,
		tokens: tokens,
		mailer: mailer,
		log:    log.With(zap.String("service", "account")),
	}
}

func (s *accountService) CreateAccount(ctx context.Context, req *request.CreateAccountRequest) error {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create account validation failed", zap.Any("errors", errs))
		return ErrCreateAccountFailed
	}

	// 2. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return ErrCreateAccountFailed
	}

	// 3. Create user entity, unverified until the emailed code comes back
	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:        utils.NormalizeEmail(req.Email),
		PasswordHash: hashedPassword,
		Role:         entity.UserRole(req.Role),
		Verified:     false,
	}

	// 4. Save user. The unique index on email is the duplicate check; no
	// prior existence lookup, so concurrent signups cannot race past it
	if err := s.repo.User.Create(ctx, user); err != nil {
		if isUniqueViolation(err) {
			s.log.Warn("Duplicate email on create account", zap.String("email", user.Email))
			return ErrEmailTaken
		}
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", user.Email))
		return ErrCreateAccountFailed
	}

	// 5. Create verification code
	verification := &entity.Verification{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		UserID: user.ID,
		Code:   utils.GenerateVerificationCode(),
	}

	if err := s.repo.Verification.Create(ctx, verification); err != nil {
		s.log.Error("Failed to create verification",
			zap.Error(err), zap.String("user_id", user.ID.String()))
		return ErrCreateAccountFailed
	}

	// 6. Send verification email. Best effort: a failed send never rolls
	// back the account
	if ok := s.mailer.SendVerificationEmail(ctx, user.Email, verification.Code); !ok {
		s.log.Warn("Failed to send verification email",
			zap.String("email", user.Email),
			zap.String("user_id", user.ID.String()))
	}

	s.log.Info("Account created",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
		zap.String("role", string(user.Role)))

	return nil
}

func (s *accountService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, ErrLoginFailed
	}

	// 2. Find user by email
	user, err := s.repo.User.FindByEmail(ctx, utils.NormalizeEmail(req.Email))
	if err != nil {
		s.log.Error("Failed to find user for login", zap.Error(err))
		return nil, ErrLoginFailed
	}
	if user == nil {
		s.log.Warn("User not found for login", zap.String("email", req.Email))
		return nil, ErrUserNotFound
	}

	// 3. Check password against the stored hash
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, ErrWrongPassword
	}

	// 4. Issue signed token bound to the user ID
	signed, err := s.tokens.Sign(user.ID)
	if err != nil {
		s.log.Error("Failed to sign token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, ErrLoginFailed
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID.String()))

	return &response.LoginResponse{Token: signed}, nil
}

// FindByID resolves a user profile. Lookup faults are conflated with
// absence: the caller only learns the user was not found.
func (s *accountService) FindByID(ctx context.Context, userID string) (*response.UserResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		s.log.Warn("Invalid user ID", zap.String("user_id", userID), zap.Error(err))
		return nil, ErrUserNotFound
	}

	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID))
		return nil, ErrUserNotFound
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *accountService) GetAllUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	users, err := s.repo.User.FindAll(ctx, limit, offset)
	if err != nil {
		s.log.Error("Failed to get all users",
			zap.Error(err),
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
		)
		return nil, ErrUserNotFound
	}

	total, err := s.repo.User.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count users", zap.Error(err))
		return nil, ErrUserNotFound
	}

	userResponses := make([]response.UserResponse, len(users))
	for i, user := range users {
		userResponses[i] = response.UserToResponse(user)
	}

	return response.NewPaginatedResponse(userResponses, req.Page, req.PerPage, total), nil
}

func (s *accountService) EditProfile(ctx context.Context, userID uuid.UUID, req *request.EditProfileRequest) error {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Edit profile validation failed", zap.Any("errors", errs))
		return ErrProfileUpdateFailed
	}

	// 2. Load user. The caller is already authenticated, so absence here
	// is a dependency fault, not a user error
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil || user == nil {
		s.log.Error("Failed to load user for profile edit",
			zap.Error(err), zap.String("user_id", userID.String()))
		return ErrProfileUpdateFailed
	}

	emailChanged := false

	// 3. Apply email change: new address starts unverified
	if req.Email != nil {
		user.Email = utils.NormalizeEmail(*req.Email)
		user.Verified = false
		emailChanged = true
	}

	// 4. Apply password change
	if req.Password != nil {
		hashedPassword, err := utils.HashPassword(*req.Password)
		if err != nil {
			s.log.Error("Failed to hash new password", zap.Error(err))
			return ErrProfileUpdateFailed
		}
		user.PasswordHash = hashedPassword
	}

	// 5. Persist once, both mutations applied
	user.UpdatedAt = time.Now()
	if err := s.repo.User.Update(ctx, user); err != nil {
		if isUniqueViolation(err) {
			s.log.Warn("Duplicate email on profile edit", zap.String("email", user.Email))
			return ErrEmailTaken
		}
		s.log.Error("Failed to update user",
			zap.Error(err), zap.String("user_id", userID.String()))
		return ErrProfileUpdateFailed
	}

	// 6. Re-verification for the new address: replace any pending code and
	// send a fresh one to the new email
	if emailChanged {
		if err := s.repo.Verification.DeleteByUserID(ctx, user.ID); err != nil {
			s.log.Error("Failed to drop stale verification",
				zap.Error(err), zap.String("user_id", user.ID.String()))
			return ErrProfileUpdateFailed
		}

		verification := &entity.Verification{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: time.Now(),
			},
			UserID: user.ID,
			Code:   utils.GenerateVerificationCode(),
		}

		if err := s.repo.Verification.Create(ctx, verification); err != nil {
			s.log.Error("Failed to create verification",
				zap.Error(err), zap.String("user_id", user.ID.String()))
			return ErrProfileUpdateFailed
		}

		if ok := s.mailer.SendVerificationEmail(ctx, user.Email, verification.Code); !ok {
			s.log.Warn("Failed to send verification email",
				zap.String("email", user.Email),
				zap.String("user_id", user.ID.String()))
		}
	}

	s.log.Info("Profile updated",
		zap.String("user_id", user.ID.String()),
		zap.Bool("email_changed", emailChanged),
		zap.Bool("password_changed", req.Password != nil))

	return nil
}

func (s *accountService) VerifyEmail(ctx context.Context, code string) error {
	// Lookup, user update and code deletion happen in one transaction, so
	// a code verifies at most once even under concurrent attempts
	user, err := s.repo.Verification.Consume(ctx, code)
	if err != nil {
		s.log.Error("Failed to consume verification", zap.Error(err))
		return ErrVerifyEmailFailed
	}
	if user == nil {
		return ErrVerificationNotFound
	}

	s.log.Info("Email verified",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return nil
}
