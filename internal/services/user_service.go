package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/forteraglobal/fortera-api/internal/models"
)

// ErrUserExists is returned when an identity with the same email already exists
var ErrUserExists = errors.New("user_already_exists")

// UserService manages authentication identities
type UserService interface {
	CreateUser(user *models.User) error
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	DeleteUser(id string) error
	// UpdatePassword replaces the stored password hash for the identity
	UpdatePassword(id, plain string) error
	// RecordSignIn stamps last_sign_in_at for the given identity
	RecordSignIn(id string) error
}

type userService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) UserService {
	return &userService{db: db}
}

func (s *userService) CreateUser(user *models.User) error {
	var existing models.User
	if err := s.db.Where("email = ?", user.Email).First(&existing).Error; err == nil {
		return ErrUserExists
	}

	return s.db.Create(user).Error
}

func (s *userService) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *userService) GetUserByID(id string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *userService) DeleteUser(id string) error {
	return s.db.Where("id = ?", id).Delete(&models.User{}).Error
}

func (s *userService) UpdatePassword(id, plain string) error {
	var user models.User
	if err := s.db.Where("id = ?", id).First(&user).Error; err != nil {
		return err
	}
	if err := user.SetPassword(plain); err != nil {
		return err
	}
	return s.db.Model(&user).Update("password_hash", user.PasswordHash).Error
}

func (s *userService) RecordSignIn(id string) error {
	now := time.Now()
	return s.db.Model(&models.User{}).Where("id = ?", id).Update("last_sign_in_at", &now).Error
}
