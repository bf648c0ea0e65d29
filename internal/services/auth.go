package services

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/Jannescynatix/ipg/internal/database"
	"github.com/Jannescynatix/ipg/internal/models"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	jwtService *JWTService
}

func NewAuthService(jwtService *JWTService) *AuthService {
	return &AuthService{
		jwtService: jwtService,
	}
}

// HashPassword hashes a password using bcrypt
func (a *AuthService) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPassword compares a password with a hash
func (a *AuthService) CheckPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// EnsureAdminUser creates the single admin account if it does not exist yet.
// Safe to call on every startup.
func (a *AuthService) EnsureAdminUser(ctx context.Context, password string) error {
	existing, err := a.GetUserByUsername(ctx, models.AdminUsername)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return err
	}
	if existing != nil {
		return nil
	}

	if password == "" {
		return errors.New("ADMIN_PASSWORD is not set and no admin user exists")
	}

	hash, err := a.HashPassword(password)
	if err != nil {
		return err
	}

	user := &models.AdminUser{
		Username:     models.AdminUsername,
		PasswordHash: hash,
	}
	if _, err := database.DB.NewInsert().Model(user).Exec(ctx); err != nil {
		return err
	}

	log.Printf("Admin user created")
	return nil
}

// GetUserByUsername retrieves an admin user by username
func (a *AuthService) GetUserByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	user := new(models.AdminUser)
	err := database.DB.NewSelect().
		Model(user).
		Where("username = ?", username).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// RecordFailedLogin appends one failed-login audit record. The username is
// stored as supplied, whether or not it exists.
func (a *AuthService) RecordFailedLogin(ctx context.Context, ip, username string) error {
	event := &models.FailedLogin{IPAddress: ip, Username: username}
	_, err := database.DB.NewInsert().Model(event).Exec(ctx)
	return err
}

// RecordSuccessfulLogin appends one successful-login audit record
func (a *AuthService) RecordSuccessfulLogin(ctx context.Context, ip, username string) error {
	event := &models.SuccessfulLogin{IPAddress: ip, Username: username}
	_, err := database.DB.NewInsert().Model(event).Exec(ctx)
	return err
}

// RecordSuccessfulLogout appends one logout audit record
func (a *AuthService) RecordSuccessfulLogout(ctx context.Context, ip, username string) error {
	event := &models.SuccessfulLogout{IPAddress: ip, Username: username}
	_, err := database.DB.NewInsert().Model(event).Exec(ctx)
	return err
}

// GenerateToken generates a JWT token for the admin user
func (a *AuthService) GenerateToken(user *models.AdminUser) (string, error) {
	return a.jwtService.GenerateToken(user.Username)
}

// ValidateToken validates a JWT token and returns claims
func (a *AuthService) ValidateToken(token string) (*JWTClaims, error) {
	return a.jwtService.ValidateToken(token)
}
