package main

import (
	"errors"
	"strings"

	"bistro/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Credential store errors. ErrInvalidCredentials covers both unknown email
// and wrong password so neither is distinguishable to the caller.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrPasswordTooShort   = errors.New("password too short (min 6)")
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrInactiveAccount    = errors.New("inactive user account")
)

// RegisterUser creates an account with a freshly computed bcrypt hash.
// Email matching is case-sensitive, same as the lookup at login.
func (s *Server) RegisterUser(email, fullName, password, phone string) (*models.User, error) {
	email = strings.TrimSpace(email)
	if len(password) < 6 {
		return nil, ErrPasswordTooShort
	}
	// pre-check existing (optimistic)
	var existing models.User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := models.User{
		Email:        email,
		FullName:     fullName,
		PasswordHash: hash,
		Phone:        phone,
		IsActive:     true,
		IsAdmin:      false,
	}
	if err := s.db.Create(&user).Error; err != nil {
		if isUniqueConstraintError(err) { // race condition after initial check
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return &user, nil
}

// FindUserByEmail is a pure lookup with a case-sensitive match.
func (s *Server) FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Authenticate verifies a submitted password against the stored hash.
// A missing account and a failed hash comparison return the same error.
func (s *Server) Authenticate(email, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", strings.TrimSpace(email)).First(&user).Error; err != nil {
		// burn a hash comparison anyway so the two failure paths cost the same
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrInactiveAccount
	}
	return &user, nil
}

// dummyHash is compared against when the account does not exist, keeping
// the unknown-email path as slow as the wrong-password path.
var dummyHash = func() []byte {
	h, _ := bcrypt.GenerateFromPassword([]byte("bistro-dummy"), bcrypt.DefaultCost)
	return h
}()

// UserUpdate carries the optional fields of a profile update.
type UserUpdate struct {
	FullName *string
	Phone    *string
	Password *string
}

// UpdateUser applies a partial update; a supplied password is re-hashed.
func (s *Server) UpdateUser(user *models.User, upd UserUpdate) error {
	if upd.FullName != nil {
		user.FullName = *upd.FullName
	}
	if upd.Phone != nil {
		user.Phone = *upd.Phone
	}
	if upd.Password != nil {
		if len(*upd.Password) < 6 {
			return ErrPasswordTooShort
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*upd.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user.PasswordHash = hash
	}
	return s.db.Save(user).Error
}

func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	s := err.Error()
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint") || strings.Contains(s, "already exists")
}
