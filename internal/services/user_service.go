package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "expensetracker/internal/errors"
	"expensetracker/internal/logger"
	"expensetracker/internal/models"
	"expensetracker/internal/password"
)

// userService handles user-related business logic.
type userService struct {
	db     *gorm.DB
	hasher password.Hasher
}

// NewUserService creates a new UserServicer that stores passwords with hasher.
func NewUserService(db *gorm.DB, hasher password.Hasher) UserServicer {
	return &userService{db: db, hasher: hasher}
}

// RegisterUser creates a user with a zero budget.
func (s *userService) RegisterUser(username, pass string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || pass == "" {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "username and password are required")
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	if count > 0 {
		return nil, apperrors.ErrUserExists
	}

	hash, err := s.hasher.Hash(pass)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: hash,
	}
	if err := s.db.Create(user).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return user, nil
}

// Authenticate reports whether the credentials match a stored user. Storage
// failures are logged and count as a mismatch.
func (s *userService) Authenticate(username, pass string) bool {
	user, err := s.GetUser(strings.TrimSpace(username))
	if err != nil {
		if !errors.Is(err, apperrors.ErrUserNotFound) {
			logger.Get().Errorw("authenticate: user lookup failed", "username", username, "error", err)
		}
		return false
	}
	return s.hasher.Verify(user.PasswordHash, pass)
}

// UserExists reports whether username is registered.
func (s *userService) UserExists(username string) bool {
	var count int64
	if err := s.db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		logger.Get().Errorw("user exists check failed", "username", username, "error", err)
		return false
	}
	return count > 0
}

// GetUser retrieves a user by username
func (s *userService) GetUser(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return &user, nil
}
