package service

import (
	"errors"
	"strings"
	"time"

	"github.com/ramani-fashion/api/internal/config"
	"github.com/ramani-fashion/api/internal/logger"
	"github.com/ramani-fashion/api/internal/models"
	"github.com/ramani-fashion/api/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// RegisterInput is the registration payload.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

// UserAuthService handles storefront account registration and login.
// Registration is gated on a verified OTP for the phone; the gate
// consumes the OTP record so each code registers at most one account.
type UserAuthService struct {
	cfg        *config.Config
	userRepo   repository.UserRepository
	otpService *OTPService
}

// NewUserAuthService creates the user auth service.
func NewUserAuthService(cfg *config.Config, userRepo repository.UserRepository, otpService *OTPService) *UserAuthService {
	return &UserAuthService{
		cfg:        cfg,
		userRepo:   userRepo,
		otpService: otpService,
	}
}

// UserJWTClaims are the storefront token claims.
type UserJWTClaims struct {
	UserID uint   `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// GenerateUserJWT issues a storefront token.
func (s *UserAuthService) GenerateUserJWT(user *models.User) (string, time.Time, error) {
	expireHours := s.cfg.UserJWT.ExpireHours
	if expireHours <= 0 {
		expireHours = 72
	}
	expiresAt := time.Now().Add(time.Duration(expireHours) * time.Hour)

	claims := UserJWTClaims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.cfg.UserJWT.SecretKey))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// ParseUserJWT validates a storefront token and returns its claims.
func (s *UserAuthService) ParseUserJWT(tokenString string) (*UserJWTClaims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	token, err := parser.ParseWithClaims(tokenString, &UserJWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.UserJWT.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*UserJWTClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

// Register creates an account gated on a verified OTP for the phone.
// The gate is checked first and the record consumed only after the
// account exists, so a failed create never burns a verified code.
func (s *UserAuthService) Register(input RegisterInput) (*models.User, string, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Phone = strings.TrimSpace(input.Phone)
	if input.Name == "" || input.Email == "" || input.Password == "" || input.Phone == "" {
		return nil, "", ErrInvalidInput
	}

	if err := s.otpService.CheckVerified(input.Phone); err != nil {
		return nil, "", err
	}

	existing, err := s.userRepo.GetByEmail(input.Email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		Name:          input.Name,
		Email:         input.Email,
		PasswordHash:  string(hash),
		Phone:         input.Phone,
		PhoneVerified: true,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, "", err
	}

	if err := s.otpService.ConsumeVerified(input.Phone); err != nil {
		logger.Warnw("otp_consume_after_register_failed", "user_id", user.ID, "error", err)
	}

	token, _, err := s.GenerateUserJWT(user)
	if err != nil {
		return nil, "", err
	}

	logger.Infow("user_registered", "user_id", user.ID, "email", user.Email)
	return user, token, nil
}

// Login verifies the password and issues a token. Accounts predating
// the OTP gate must complete phone verification on first login: the
// client resubmits the account's phone, which must match and carry a
// live verified OTP; that upgrades the account one way.
func (s *UserAuthService) Login(email, password, phone string) (*models.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if !user.PhoneVerified {
		phone = strings.TrimSpace(phone)
		if phone == "" {
			return nil, "", ErrPhoneRequired
		}
		if phone != user.Phone {
			return nil, "", ErrPhoneMismatch
		}
		if err := s.otpService.ConsumeVerified(phone); err != nil {
			return nil, "", ErrPhoneNotVerified
		}
		user.PhoneVerified = true
		if err := s.userRepo.Update(user); err != nil {
			return nil, "", err
		}
		logger.Infow("user_phone_verified_on_login", "user_id", user.ID)
	}

	token, _, err := s.GenerateUserJWT(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// GetByID returns the account for the token's user id.
func (s *UserAuthService) GetByID(userID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}
