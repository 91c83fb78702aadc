package services

import (
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/forteraglobal/fortera-api/internal/models"
)

// Roster errors. Add reports which of its two steps failed so callers
// can surface distinct messages.
var (
	ErrSelfRemoval   = errors.New("cannot remove your own admin access")
	ErrAccountCreate = errors.New("account creation failed")
	ErrRoleAssign    = errors.New("role assignment failed")
)

// MinPasswordLength applies to new admin accounts and password changes
const MinPasswordLength = 8

// AdminEntry is one roster row, enriched with identity attributes.
type AdminEntry struct {
	UserID       string     `json:"user_id"`
	Email        string     `json:"email"`
	LastSignInAt *time.Time `json:"last_sign_in_at"`
	CreatedAt    time.Time  `json:"created_at"`
}

// RosterService manages the admin role-assignment rows
type RosterService interface {
	// ListAdmins returns every admin role assignment with identity
	// attributes joined in. An empty roster is a valid result.
	ListAdmins() ([]AdminEntry, error)
	// AddAdmin creates an identity and assigns it the admin role. If the
	// role assignment fails the created identity is deleted again, so no
	// orphaned account is left behind.
	AddAdmin(email, password string) (*AdminEntry, error)
	// RemoveAdmin deletes the role assignment for targetID. The caller
	// can never remove itself; that guarantees at least one admin stays
	// able to self-manage.
	RemoveAdmin(callerID, targetID string) error
	// IsAdmin reports whether the identity holds the admin role. Any
	// query error reports false (fail closed).
	IsAdmin(userID string) bool
	// RoleFor returns the highest role assigned to the identity, or
	// "user" when none is assigned.
	RoleFor(userID string) string
}

type rosterService struct {
	db    *gorm.DB
	users UserService
}

func NewRosterService(db *gorm.DB, users UserService) RosterService {
	return &rosterService{db: db, users: users}
}

func (s *rosterService) ListAdmins() ([]AdminEntry, error) {
	var roles []models.UserRole
	if err := s.db.Where("role = ?", models.RoleAdmin).Order("created_at asc").Find(&roles).Error; err != nil {
		return nil, err
	}

	entries := make([]AdminEntry, 0, len(roles))
	for _, role := range roles {
		entry := AdminEntry{UserID: role.UserID, CreatedAt: role.CreatedAt}
		user, err := s.users.GetUserByID(role.UserID)
		if err != nil {
			// Role row pointing at a deleted identity; keep it listed so
			// it can still be removed from the roster.
			entry.Email = "Unknown"
		} else {
			entry.Email = user.Email
			entry.LastSignInAt = user.LastSignInAt
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (s *rosterService) AddAdmin(email, password string) (*AdminEntry, error) {
	if len(password) < MinPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrAccountCreate, MinPasswordLength)
	}

	user := &models.User{Email: email}
	if err := user.SetPassword(password); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAccountCreate, err)
	}
	if err := s.users.CreateUser(user); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAccountCreate, err)
	}

	role := &models.UserRole{UserID: user.ID, Role: models.RoleAdmin}
	if err := s.db.Create(role).Error; err != nil {
		// Compensating action: don't leave an identity without a role behind.
		if delErr := s.users.DeleteUser(user.ID); delErr != nil {
			log.WithFields(log.Fields{
				"user_id": user.ID,
				"error":   delErr.Error(),
			}).Error("Failed to clean up identity after role assignment failure")
		}
		return nil, fmt.Errorf("%w: %v", ErrRoleAssign, err)
	}

	return &AdminEntry{UserID: user.ID, Email: user.Email, CreatedAt: role.CreatedAt}, nil
}

func (s *rosterService) RemoveAdmin(callerID, targetID string) error {
	if callerID == targetID {
		return ErrSelfRemoval
	}
	return s.db.Where("user_id = ? AND role = ?", targetID, models.RoleAdmin).
		Delete(&models.UserRole{}).Error
}

func (s *rosterService) IsAdmin(userID string) bool {
	var count int64
	err := s.db.Model(&models.UserRole{}).
		Where("user_id = ? AND role = ?", userID, models.RoleAdmin).
		Count(&count).Error
	if err != nil {
		log.WithError(err).Warn("Admin role check failed, denying access")
		return false
	}
	return count > 0
}

func (s *rosterService) RoleFor(userID string) string {
	if s.IsAdmin(userID) {
		return models.RoleAdmin
	}
	return models.RoleUser
}
