// services/auth_service.go - Account Creation & Credential Verification
package services

import (
	"context"
	"errors"

	"teamtask/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	db   *gorm.DB
	cost int
}

// NewAuthService creates the auth service. cost is the bcrypt work factor;
// pass 0 to use the bcrypt default.
func NewAuthService(db *gorm.DB, cost int) *AuthService {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &AuthService{db: db, cost: cost}
}

// HashPassword produces a salted bcrypt hash. bcrypt generates a fresh random
// salt per call, so hashing the same password twice yields different hashes.
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches hash. Malformed hashes
// verify as false rather than erroring.
func (s *AuthService) VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// CreateUser registers a new account. Returns ErrDuplicateUser when the
// username or email is already taken.
func (s *AuthService) CreateUser(ctx context.Context, username, email, password, fullName string, role models.Role) (*models.User, error) {
	var existing models.User
	err := s.db.WithContext(ctx).
		Where("username = ? OR email = ?", username, email).
		First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateUser
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := s.HashPassword(password)
	if err != nil {
		return nil, err
	}

	if fullName == "" {
		fullName = username
	}
	if role == "" {
		role = models.RoleMember
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		FullName:     fullName,
		Role:         role,
		IsActive:     true,
	}

	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// Authenticate checks username and password against the stored hash. It
// returns nil for an unknown user, an inactive account, and a wrong password
// alike; callers cannot tell which check failed.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if !user.IsActive {
		return nil, nil
	}

	if !s.VerifyPassword(password, user.PasswordHash) {
		return nil, nil
	}

	return &user, nil
}

// GetUserByID returns the user or nil when absent.
func (s *AuthService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByUsername returns the user or nil when absent.
func (s *AuthService) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UserUpdate lists the user fields a caller may change. Nil fields are left
// untouched. A new password is rehashed before storage.
type UserUpdate struct {
	Email    *string
	FullName *string
	Role     *models.Role
	IsActive *bool
	Password *string
}

// UpdateUser applies a partial update and returns the updated user, or nil
// when no such user exists.
func (s *AuthService) UpdateUser(ctx context.Context, id uint, update UserUpdate) (*models.User, error) {
	user, err := s.GetUserByID(ctx, id)
	if err != nil || user == nil {
		return nil, err
	}

	if update.Email != nil {
		user.Email = *update.Email
	}
	if update.FullName != nil {
		user.FullName = *update.FullName
	}
	if update.Role != nil {
		user.Role = *update.Role
	}
	if update.IsActive != nil {
		user.IsActive = *update.IsActive
	}
	if update.Password != nil {
		hash, err := s.HashPassword(*update.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := s.db.WithContext(ctx).Save(user).Error; err != nil {
		return nil, err
	}

	return user, nil
}
