package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/naveenrjn/prep-hub-be/internal/auth"
	"github.com/naveenrjn/prep-hub-be/internal/models"
)

var (
	// ErrInvalidCredentials is returned for both an unknown email and a wrong
	// password so login responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmailTaken is returned when registering an email already on file.
	ErrEmailTaken = errors.New("email already registered")
	// ErrUserNotFound is returned by lookups that find no matching user.
	ErrUserNotFound = errors.New("user not found")
)

// UserServiceProvider defines the interface for user services.
type UserServiceProvider interface {
	Register(name, email, phone, password string) (models.User, error)
	Authenticate(email, password string) (models.User, error)
	GetByEmail(email string) (models.User, error)
	GetByID(id string) (models.User, error)
}

// UserService provides business logic for account management.
type UserService struct {
	db *sql.DB
}

// NewUserService creates a new UserService.
func NewUserService(db *sql.DB) *UserService {
	return &UserService{db: db}
}

// Register creates a new user account. The duplicate-email check runs before
// hashing so rejected registrations never pay the bcrypt cost.
func (s *UserService) Register(name, email, phone, password string) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var exists int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM users WHERE email = ?", email).Scan(&exists); err != nil {
		return models.User{}, err
	}
	if exists > 0 {
		return models.User{}, ErrEmailTaken
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		Phone:        phone,
		PasswordHash: hashed,
		IsActive:     true,
	}

	stmt, err := s.db.Prepare("INSERT INTO users(id, name, email, phone, password_hash, is_active) VALUES(?, ?, ?, ?, ?, 1)")
	if err != nil {
		return models.User{}, err
	}
	defer stmt.Close()

	if _, err := stmt.Exec(user.ID, user.Name, user.Email, user.Phone, user.PasswordHash); err != nil {
		return models.User{}, err
	}

	// Return user without password hash
	user.PasswordHash = ""
	return user, nil
}

// Authenticate verifies a user's credentials. Unknown email and wrong
// password collapse into the same error.
func (s *UserService) Authenticate(email, password string) (models.User, error) {
	user, err := s.getByEmailWithHash(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return models.User{}, ErrInvalidCredentials
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return models.User{}, ErrInvalidCredentials
	}

	// Don't send the password hash to the client
	user.PasswordHash = ""
	return user, nil
}

// GetByEmail retrieves a single user by email, without the password hash.
func (s *UserService) GetByEmail(email string) (models.User, error) {
	user, err := s.getByEmailWithHash(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return models.User{}, err
	}
	user.PasswordHash = ""
	return user, nil
}

// GetByID retrieves a single user by their ID.
func (s *UserService) GetByID(id string) (models.User, error) {
	var user models.User
	row := s.db.QueryRow("SELECT id, name, email, COALESCE(phone, ''), is_active, created_at FROM users WHERE id = ?", id)
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.Phone, &user.IsActive, &user.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

func (s *UserService) getByEmailWithHash(email string) (models.User, error) {
	var user models.User
	row := s.db.QueryRow("SELECT id, name, email, COALESCE(phone, ''), password_hash, is_active, created_at FROM users WHERE email = ?", email)
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.Phone, &user.PasswordHash, &user.IsActive, &user.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}
