package services

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/Artur-creator-1/blogapp/models"
	"github.com/Artur-creator-1/blogapp/repos"
	"github.com/Artur-creator-1/blogapp/utils"
)

// RegisterRequest carries the fields accepted at registration.
type RegisterRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

// UpdateUserRequest carries the user fields that may change after creation.
// Blank fields are left untouched.
type UpdateUserRequest struct {
	DisplayName string `json:"display_name"`
	Bio         string `json:"bio"`
}

// UserService owns user business rules: registration validation, uniqueness,
// credential handling, and soft-delete visibility.
type UserService struct {
	users repos.UserRepo
	log   *zap.SugaredLogger
}

// NewUserService wires a UserService to its repository.
func NewUserService(users repos.UserRepo, log *zap.SugaredLogger) *UserService {
	return &UserService{users: users, log: log}
}

// GetByID returns an active user. Deactivated users read as not found.
func (s *UserService) GetByID(ctx context.Context, id int64) Response[*models.User] {
	if id <= 0 {
		return Fail[*models.User](KindValidation, "Invalid user ID")
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repos.ErrNotFound) {
			return Fail[*models.User](KindNotFound, "User not found")
		}
		s.log.Errorw("get user failed", "id", id, "err", err)
		return Fail[*models.User](KindUnexpected, "An error occurred while retrieving the user")
	}
	if !user.IsActive {
		return Fail[*models.User](KindNotFound, "User not found")
	}

	return OK(user, "")
}

// GetByUsername returns an active user by exact (case-sensitive) username.
func (s *UserService) GetByUsername(ctx context.Context, username string) Response[*models.User] {
	if strings.TrimSpace(username) == "" {
		return Fail[*models.User](KindValidation, "Username cannot be empty")
	}

	user, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, repos.ErrNotFound) {
			return Fail[*models.User](KindNotFound, "User not found")
		}
		s.log.Errorw("get user by username failed", "username", username, "err", err)
		return Fail[*models.User](KindUnexpected, "An error occurred while retrieving the user")
	}
	if !user.IsActive {
		return Fail[*models.User](KindNotFound, "User not found")
	}

	return OK(user, "")
}

// GetAll lists active users, newest first.
func (s *UserService) GetAll(ctx context.Context) Response[[]models.User] {
	users, err := s.users.GetAll(ctx)
	if err != nil {
		s.log.Errorw("list users failed", "err", err)
		return Fail[[]models.User](KindUnexpected, "An error occurred while retrieving users")
	}
	if len(users) == 0 {
		return OK([]models.User{}, "No users found")
	}
	return OK(users, "")
}

// Register validates the request, enforces username/email uniqueness, and
// persists the user with a bcrypt password hash. Uniqueness checks see
// deactivated accounts, so a soft-deleted username stays reserved.
func (s *UserService) Register(ctx context.Context, req RegisterRequest) Response[*models.User] {
	if errs := validateRegistration(req.Username, req.Email, req.Password, req.DisplayName); len(errs) > 0 {
		s.log.Infow("registration rejected", "username", req.Username, "errors", errs)
		return Fail[*models.User](KindValidation, "Validation failed", errs...)
	}

	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)

	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		return Fail[*models.User](KindConflict, "Username already taken")
	} else if !errors.Is(err, repos.ErrNotFound) {
		s.log.Errorw("username uniqueness check failed", "username", username, "err", err)
		return Fail[*models.User](KindUnexpected, "An error occurred during registration")
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return Fail[*models.User](KindConflict, "Email already registered")
	} else if !errors.Is(err, repos.ErrNotFound) {
		s.log.Errorw("email uniqueness check failed", "email", email, "err", err)
		return Fail[*models.User](KindUnexpected, "An error occurred during registration")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Errorw("password hashing failed", "err", err)
		return Fail[*models.User](KindUnexpected, "An error occurred during registration")
	}

	displayName := strings.TrimSpace(req.DisplayName)
	if displayName == "" {
		displayName = username
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		DisplayName:  displayName,
		Role:         models.RoleUser,
		IsActive:     true,
	}

	id, err := s.users.Create(ctx, user)
	if err != nil {
		s.log.Errorw("create user failed", "username", username, "err", err)
		return Fail[*models.User](KindUnexpected, "An error occurred during registration")
	}
	user.ID = id

	s.log.Infow("user registered", "id", id, "username", username)
	return OK(user, "User registered successfully")
}

// Update applies a partial profile update: only non-blank display name and
// bio overwrite the stored values.
func (s *UserService) Update(ctx context.Context, id int64, req UpdateUserRequest) Response[*models.User] {
	if id <= 0 {
		return Fail[*models.User](KindValidation, "Invalid user ID")
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repos.ErrNotFound) {
			return Fail[*models.User](KindNotFound, "User not found")
		}
		s.log.Errorw("get user for update failed", "id", id, "err", err)
		return Fail[*models.User](KindUnexpected, "An error occurred during update")
	}
	if !user.IsActive {
		return Fail[*models.User](KindNotFound, "User not found")
	}

	if v := strings.TrimSpace(req.DisplayName); v != "" {
		user.DisplayName = v
	}
	if v := strings.TrimSpace(req.Bio); v != "" {
		user.Bio = v
	}

	if err := s.users.Update(ctx, user); err != nil {
		s.log.Errorw("update user failed", "id", id, "err", err)
		return Fail[*models.User](KindUnexpected, "An error occurred during update")
	}

	return OK(user, "User updated successfully")
}

// Delete deactivates the user. The row is kept, so the username and email
// remain reserved.
func (s *UserService) Delete(ctx context.Context, id int64) Response[string] {
	if id <= 0 {
		return Fail[string](KindValidation, "Invalid user ID")
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repos.ErrNotFound) {
			return Fail[string](KindNotFound, "User not found")
		}
		s.log.Errorw("get user for deletion failed", "id", id, "err", err)
		return Fail[string](KindUnexpected, "An error occurred during deletion")
	}
	if !user.IsActive {
		return Fail[string](KindNotFound, "User not found")
	}

	if _, err := s.users.Deactivate(ctx, id); err != nil {
		s.log.Errorw("deactivate user failed", "id", id, "err", err)
		return Fail[string](KindUnexpected, "An error occurred during deletion")
	}

	s.log.Infow("user deactivated", "id", id, "username", user.Username)
	return OK("User deleted successfully", "")
}

// ChangePassword verifies the old password against the stored hash and
// replaces it with a fresh hash of the new one.
func (s *UserService) ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword string) Response[bool] {
	if userID <= 0 {
		return Fail[bool](KindValidation, "Invalid user ID")
	}
	if strings.TrimSpace(oldPassword) == "" || strings.TrimSpace(newPassword) == "" {
		return Fail[bool](KindValidation, "Old and new passwords cannot be empty")
	}
	if len(newPassword) < minPasswordLength {
		return Fail[bool](KindValidation, "New password must be at least 6 characters")
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repos.ErrNotFound) {
			return Fail[bool](KindNotFound, "User not found")
		}
		s.log.Errorw("get user for password change failed", "id", userID, "err", err)
		return Fail[bool](KindUnexpected, "An error occurred while changing password")
	}
	if !user.IsActive {
		return Fail[bool](KindNotFound, "User not found")
	}

	if !utils.CheckPassword(user.PasswordHash, oldPassword) {
		s.log.Infow("password change rejected", "id", userID)
		return Fail[bool](KindAuth, "Incorrect old password")
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		s.log.Errorw("password hashing failed", "id", userID, "err", err)
		return Fail[bool](KindUnexpected, "An error occurred while changing password")
	}
	user.PasswordHash = hash

	if err := s.users.Update(ctx, user); err != nil {
		s.log.Errorw("persist new password failed", "id", userID, "err", err)
		return Fail[bool](KindUnexpected, "An error occurred while changing password")
	}

	return OK(true, "Password changed successfully")
}
