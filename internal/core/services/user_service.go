package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/debt_tracker_app/internal/apperrors"
	"github.com/SscSPs/debt_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/debt_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/debt_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/debt_tracker_app/internal/dto"
	"github.com/SscSPs/debt_tracker_app/internal/utils"
	"github.com/google/uuid"
)

type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	now      func() time.Time
}

func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo, now: systemClock}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func userValidationError(message string) *apperrors.AppError {
	return apperrors.NewValidationError(apperrors.CodeValidation, message)
}

func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	if name == "" || email == "" || req.Password == "" || len(req.Roles) == 0 {
		return nil, userValidationError("name, email, password and roles are required")
	}

	roles := make([]domain.Role, 0, len(req.Roles))
	for _, r := range req.Roles {
		role := domain.Role(strings.TrimSpace(r))
		if !role.IsValid() {
			return nil, userValidationError("unknown role " + r)
		}
		if !domain.HasAnyRole(roles, role) {
			roles = append(roles, role)
		}
	}

	if _, err := s.userRepo.FindUserByEmail(ctx, email); err == nil {
		return nil, apperrors.NewConflictError(apperrors.CodeEmailExists, "email already registered")
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check email availability")
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		if errors.Is(err, utils.ErrPasswordTooLong) {
			return nil, userValidationError("password is too long")
		}
		s.LogError(ctx, err, "Failed to hash password")
		return nil, err
	}

	now := s.now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         name,
		Phone:        trimmedOrNil(req.Phone),
		Email:        email,
		PasswordHash: hash,
		Roles:        roles,
		Timestamps:   domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.logUnexpected(ctx, err, "Failed to save user in repository")
		return nil, err
	}

	s.LogInfo(ctx, "User created successfully", slog.String("user_id", user.UserID))
	return &user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(apperrors.CodeUserNotFound, "user not found")
		}
		s.LogError(ctx, err, "Failed to find user by ID in repository", slog.String("user_id", userID))
		return nil, err
	}
	return user, nil
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(apperrors.CodeUserNotFound, "user not found")
		}
		s.LogError(ctx, err, "Failed to find user by email in repository")
		return nil, err
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, email string) ([]domain.User, error) {
	users, err := s.userRepo.FindUsers(ctx, strings.TrimSpace(email))
	if err != nil {
		s.LogError(ctx, err, "Failed to list users from repository")
		return nil, err
	}
	return users, nil
}

// AuthenticateUser reports unknown emails and wrong passwords identically.
func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	invalid := apperrors.NewUnauthorizedError("invalid credentials")

	user, err := s.userRepo.FindUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, invalid
		}
		s.LogError(ctx, err, "Failed to look up user for login")
		return nil, err
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.GetLogger(ctx).Warn("Rejected login", slog.String("user_id", user.UserID))
		return nil, invalid
	}
	return user, nil
}

func (s *userService) EnsureBootstrapAdmin(ctx context.Context, name, email, password string) error {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil
	}
	users, err := s.userRepo.FindUsers(ctx, "")
	if err != nil {
		return err
	}
	if len(users) > 0 {
		return nil
	}
	if strings.TrimSpace(name) == "" {
		name = "Administrador"
	}

	user, err := s.CreateUser(ctx, dto.CreateUserRequest{
		Name:     name,
		Email:    email,
		Password: password,
		Roles:    []string{string(domain.RoleSuperAdmin)},
	})
	if err != nil {
		return err
	}
	s.LogInfo(ctx, "Bootstrap superadmin created", slog.String("user_id", user.UserID))
	return nil
}
