package service

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/mkulima/livestock-market/internal/config"
	"github.com/mkulima/livestock-market/internal/database/models"
	"github.com/mkulima/livestock-market/internal/database/repository"
)

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Register(input RegisterInput) (*models.User, string, error)
	Login(email, password string) (*models.User, *TokenPair, error)
	RefreshToken(refreshToken string) (*TokenPair, error)
	Logout(refreshToken string) error
	ValidateAccessToken(tokenString string) (uint, error)
}

// RegisterInput carries everything a registration may submit. The
// profile fields are consulted only for the matching role.
type RegisterInput struct {
	Name         string
	Email        string
	Phone        string
	Role         string
	Password     string
	FarmName     string
	FarmLocation string
	CompanyName  string
	Address      string
}

// TokenPair represents access and refresh tokens
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

type authService struct {
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	jwtSecret        string
	cfg              *config.Config
	logger           *slog.Logger
}

// NewAuthService creates a new authentication service instance
func NewAuthService(
	userRepo repository.UserRepository,
	refreshTokenRepo repository.RefreshTokenRepository,
	cfg *config.Config,
	logger *slog.Logger,
) AuthService {
	return &authService{
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		jwtSecret:        cfg.JWTSecret,
		cfg:              cfg,
		logger:           logger,
	}
}

func (s *authService) Register(input RegisterInput) (*models.User, string, error) {
	s.logger.Info("📝 [AuthService] Registration attempt", "email", input.Email, "role", input.Role)

	role := strings.ToLower(strings.TrimSpace(input.Role))
	if role == "" {
		role = models.RoleUser
	}

	if input.Name == "" || input.Email == "" || input.Phone == "" || input.Password == "" {
		return nil, "", validationError("Missing required fields")
	}
	if !models.IsValidEmail(input.Email) {
		return nil, "", validationError("Invalid email format")
	}
	if !models.IsValidPhone(input.Phone) {
		return nil, "", validationError("Phone must be 10 digits")
	}
	if !models.IsValidRole(role) {
		return nil, "", validationError("Invalid role")
	}
	if !models.IsValidPassword(input.Password) {
		return nil, "", validationError("Password must be at least 8 characters long and contain at least one uppercase letter, one lowercase letter, and one number")
	}

	// The profile's required field is checked before anything is written,
	// so a bad registration never leaves a user row behind.
	var farmer *models.Farmer
	var broker *models.Broker
	switch role {
	case models.RoleFarmer:
		if strings.TrimSpace(input.FarmName) == "" {
			return nil, "", validationError("Farm name is required for farmers")
		}
		farmer = &models.Farmer{
			FarmName:     input.FarmName,
			FarmLocation: input.FarmLocation,
			IsActive:     true,
		}
	case models.RoleBroker:
		if strings.TrimSpace(input.CompanyName) == "" {
			return nil, "", validationError("Company name is required for brokers")
		}
		broker = &models.Broker{
			CompanyName: input.CompanyName,
			Address:     input.Address,
			IsActive:    true,
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("❌ [AuthService] Failed to hash password", "error", err)
		return nil, "", err
	}

	user := &models.User{
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		Role:         role,
		PasswordHash: string(hashedPassword),
		IsActive:     true,
	}

	if err := s.userRepo.CreateWithProfile(user, farmer, broker); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			s.logger.Warn("⚠️ [AuthService] Email already registered", "email", input.Email)
			return nil, "", ErrEmailAlreadyExists
		}
		s.logger.Error("❌ [AuthService] Failed to create user", "error", err)
		return nil, "", err
	}

	accessToken, err := s.generateAccessToken(user.ID)
	if err != nil {
		s.logger.Error("❌ [AuthService] Failed to generate access token", "error", err)
		return nil, "", err
	}

	s.logger.Info("✅ [AuthService] User registered successfully", "user_id", user.ID, "role", role)
	return user, accessToken, nil
}

func (s *authService) Login(email, password string) (*models.User, *TokenPair, error) {
	s.logger.Info("🔐 [AuthService] Login attempt", "email", email)

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.logger.Warn("⚠️ [AuthService] User not found", "email", email)
			return nil, nil, repository.ErrUserNotFound
		}
		s.logger.Error("❌ [AuthService] Database error", "error", err)
		return nil, nil, err
	}

	if !user.IsActive {
		s.logger.Warn("⚠️ [AuthService] Account deactivated", "email", email)
		return nil, nil, ErrAccountDeactivated
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("⚠️ [AuthService] Invalid password", "email", email)
		return nil, nil, ErrInvalidPassword
	}

	tokens, err := s.generateTokenPair(user.ID)
	if err != nil {
		s.logger.Error("❌ [AuthService] Failed to generate tokens", "error", err)
		return nil, nil, err
	}

	s.logger.Info("✅ [AuthService] User logged in successfully", "user_id", user.ID)
	return user, tokens, nil
}

func (s *authService) RefreshToken(refreshToken string) (*TokenPair, error) {
	s.logger.Info("🔄 [AuthService] Token refresh attempt")

	storedToken, err := s.refreshTokenRepo.FindByToken(refreshToken)
	if err != nil {
		s.logger.Warn("⚠️ [AuthService] Invalid refresh token", "error", err)
		return nil, ErrInvalidToken
	}

	tokens, err := s.generateTokenPair(storedToken.UserID)
	if err != nil {
		s.logger.Error("❌ [AuthService] Failed to generate new tokens", "error", err)
		return nil, err
	}

	// Revoke old refresh token (token rotation)
	if err := s.refreshTokenRepo.RevokeToken(refreshToken); err != nil {
		s.logger.Error("❌ [AuthService] Failed to revoke old token", "error", err)
	}

	s.logger.Info("✅ [AuthService] Token refreshed successfully", "user_id", storedToken.UserID)
	return tokens, nil
}

func (s *authService) Logout(refreshToken string) error {
	s.logger.Info("👋 [AuthService] Logout attempt")

	if err := s.refreshTokenRepo.RevokeToken(refreshToken); err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			s.logger.Warn("⚠️ [AuthService] Token not found for logout")
			return repository.ErrTokenNotFound
		}
		return err
	}

	s.logger.Info("✅ [AuthService] User logged out successfully")
	return nil
}

// ValidateAccessToken checks signature and expiry, returning the user id
// embedded in the token. Expired and otherwise-invalid tokens surface as
// distinct errors so the middleware can answer differently.
func (s *authService) ValidateAccessToken(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.jwtSecret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, ErrInvalidToken
	}

	if !token.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return 0, ErrInvalidToken
	}

	return uint(userID), nil
}

// generateTokenPair creates both access and refresh tokens
func (s *authService) generateTokenPair(userID uint) (*TokenPair, error) {
	accessToken, err := s.generateAccessToken(userID)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.generateAndStoreRefreshToken(userID)
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    s.cfg.AccessTokenExpiration,
	}, nil
}

func (s *authService) generateAccessToken(userID uint) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"type":    "access",
		"exp":     time.Now().Add(time.Duration(s.cfg.AccessTokenExpiration) * time.Second).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func (s *authService) generateAndStoreRefreshToken(userID uint) (string, error) {
	// Cryptographically secure random token
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", err
	}
	tokenString := base64.URLEncoding.EncodeToString(tokenBytes)

	refreshToken := &models.RefreshToken{
		UserID:    userID,
		Token:     tokenString,
		ExpiresAt: time.Now().Add(time.Duration(s.cfg.RefreshTokenExpiration) * time.Second),
		IsRevoked: false,
	}

	if err := s.refreshTokenRepo.Create(refreshToken); err != nil {
		return "", err
	}

	return tokenString, nil
}
