package services

import (
	"errors"
	"fmt"
	"strings"

	"inkwell/app/models"
	"inkwell/app/repositories"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrEmailTaken is returned when registering with an email that
	// already belongs to an account.
	ErrEmailTaken = errors.New("you've already signed up with that email, log in instead")

	// ErrUnknownEmail is returned when logging in with an email that has
	// no account.
	ErrUnknownEmail = errors.New("that email does not exist, please try again")

	// ErrWrongPassword is returned when the password does not match the
	// stored hash.
	ErrWrongPassword = errors.New("password incorrect, please try again")
)

// AuthService handles registration and credential checks
type AuthService struct {
	userRepo repositories.UserRepository
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repositories.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Register creates a new account with a bcrypt-hashed password. The email
// must not belong to an existing account; on ErrEmailTaken no state changes.
func (s *AuthService) Register(email, name, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)

	if err := validateRegistration(email, name, password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

// Authenticate looks the account up by email and compares the supplied
// password against the stored hash.
func (s *AuthService) Authenticate(email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.GetByEmail(email)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrUnknownEmail
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrWrongPassword
	}
	return user, nil
}

// validateRegistration validates the registration form fields
func validateRegistration(email, name, password string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if !strings.Contains(email, "@") {
		return fmt.Errorf("email is not valid")
	}
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if len(password) < 6 {
		return fmt.Errorf("password must be at least 6 characters")
	}
	return nil
}
