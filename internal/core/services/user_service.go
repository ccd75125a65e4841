package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"careerhub/internal/adapters/persistence/models"
	"careerhub/internal/adapters/persistence/repositories"
	"careerhub/internal/core/domain"
	"careerhub/internal/pkg/pagination"
	"careerhub/internal/pkg/password"
	"careerhub/internal/pkg/validate"

	"gorm.io/gorm"
)

// User service errors
var (
	ErrOldPasswordWrong    = fmt.Errorf("old password is incorrect: %w", domain.ErrInvalidInput)
	ErrCannotChangeOwnRole = fmt.Errorf("cannot change your own role: %w", domain.ErrForbidden)
)

// UserService handles user management business logic
type UserService struct {
	userRepo         repositories.UserRepository
	refreshTokenRepo repositories.RefreshTokenRepository
}

// NewUserService creates a new user service
func NewUserService(
	userRepo repositories.UserRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
) *UserService {
	return &UserService{
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
	}
}

// ListUsersInput represents list users input
type ListUsersInput struct {
	Search string
	Params *pagination.Params
}

// UpdateUserByAdminInput represents update user input (for admin)
type UpdateUserByAdminInput struct {
	Role     *string `json:"role" validate:"omitempty,oneof=USER REVIEWER ADMIN"`
	IsActive *bool   `json:"is_active"`
}

// UpdateProfileInput represents update profile input (for self)
type UpdateProfileInput struct {
	Name           *string `json:"name" validate:"omitempty,min=1,max=100"`
	Phone          *string `json:"phone" validate:"omitempty,max=30"`
	UserType       *string `json:"user_type" validate:"omitempty,oneof=individual corporate"`
	CompanyName    *string `json:"company_name" validate:"omitempty,max=200"`
	BusinessNumber *string `json:"business_number" validate:"omitempty,max=30"`
}

// ChangePasswordInput represents change password input
type ChangePasswordInput struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8,max=72"`
}

// ListUsers lists all users with pagination
func (s *UserService) ListUsers(ctx context.Context, input *ListUsersInput) ([]*models.UserResponse, int64, error) {
	if input.Params == nil {
		input.Params = pagination.New(1, pagination.DefaultLimit)
	}

	users, total, err := s.userRepo.List(ctx, input.Search, input.Params.Offset, input.Params.Limit)
	if err != nil {
		return nil, 0, err
	}

	userResponses := make([]*models.UserResponse, len(users))
	for i, user := range users {
		userResponses[i] = user.ToResponse()
	}
	return userResponses, total, nil
}

// GetUserByID gets a user by ID
func (s *UserService) GetUserByID(ctx context.Context, id string) (*models.UserResponse, error) {
	user, err := s.getUser(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.ToResponse(), nil
}

// UpdateUserByAdmin changes the role or active flag of a user
func (s *UserService) UpdateUserByAdmin(ctx context.Context, id, adminID string, input *UpdateUserByAdminInput) (*models.UserResponse, error) {
	verr := domain.NewValidationError()
	validate.Struct(verr, input)
	if err := verr.Err(); err != nil {
		return nil, err
	}

	user, err := s.getUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if id == adminID && (input.Role != nil || input.IsActive != nil) {
		return nil, ErrCannotChangeOwnRole
	}

	if input.Role != nil {
		user.Role = *input.Role
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	if !user.IsActive {
		if err := s.refreshTokenRepo.RevokeAllByUserID(ctx, user.ID); err != nil {
			log.Printf("⚠️ Failed to revoke sessions of deactivated user %s: %v", user.ID, err)
		}
	}

	log.Printf("✅ User %s updated by admin %s (role=%s, active=%v)", user.ID, adminID, user.Role, user.IsActive)
	return user.ToResponse(), nil
}

// GetProfile gets own profile
func (s *UserService) GetProfile(ctx context.Context, userID string) (*models.UserResponse, error) {
	return s.GetUserByID(ctx, userID)
}

// UpdateProfile updates own profile
func (s *UserService) UpdateProfile(ctx context.Context, userID string, input *UpdateProfileInput) (*models.UserResponse, error) {
	trim := func(p *string) {
		if p != nil {
			*p = strings.TrimSpace(*p)
		}
	}
	trim(input.Name)
	trim(input.Phone)
	trim(input.UserType)
	trim(input.CompanyName)
	trim(input.BusinessNumber)

	verr := domain.NewValidationError()
	validate.Struct(verr, input)
	if input.Name != nil && *input.Name == "" {
		verr.Add("name", "is required")
	}
	if err := verr.Err(); err != nil {
		return nil, err
	}

	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.UserType != nil {
		user.UserType = *input.UserType
	}
	if input.CompanyName != nil {
		user.CompanyName = *input.CompanyName
	}
	if input.BusinessNumber != nil {
		user.BusinessNumber = *input.BusinessNumber
	}

	if user.UserType == string(domain.UserTypeCorporate) && user.CompanyName == "" {
		return nil, domain.Invalid("company_name", "is required for corporate accounts")
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user.ToResponse(), nil
}

// ChangePassword changes user's password and signs out every session
func (s *UserService) ChangePassword(ctx context.Context, userID string, input *ChangePasswordInput) error {
	verr := domain.NewValidationError()
	validate.Struct(verr, input)
	if err := verr.Err(); err != nil {
		return err
	}

	user, err := s.getUser(ctx, userID)
	if err != nil {
		return err
	}

	if !password.Verify(input.OldPassword, user.Password) {
		return ErrOldPasswordWrong
	}

	hashedPassword, err := password.Hash(input.NewPassword)
	if err != nil {
		return err
	}

	user.Password = hashedPassword
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	return s.refreshTokenRepo.RevokeAllByUserID(ctx, user.ID)
}

// SetUserRole sets user role (for seeding and the back-office CLI)
func (s *UserService) SetUserRole(ctx context.Context, userID string, role domain.Role) error {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return err
	}

	user.Role = string(role)
	return s.userRepo.Update(ctx, user)
}

func (s *UserService) getUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
