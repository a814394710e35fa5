package service

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/ramani-fashion/api/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

// AdminID is the synthetic identity of the single back-office account.
const AdminID = "admin-1"

// AuthService authenticates the back-office. There is no admin table;
// the credential pair is injected through configuration and validated
// at process start.
type AuthService struct {
	cfg *config.Config
}

// NewAuthService creates the admin auth service.
func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{cfg: cfg}
}

// AdminJWTClaims are the admin token claims.
type AdminJWTClaims struct {
	AdminID  string `json:"adminId"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateJWT issues an admin token.
func (s *AuthService) GenerateJWT(username string) (string, time.Time, error) {
	expireHours := s.cfg.JWT.ExpireHours
	if expireHours <= 0 {
		expireHours = 24
	}
	expiresAt := time.Now().Add(time.Duration(expireHours) * time.Hour)

	claims := AdminJWTClaims{
		AdminID:  AdminID,
		Username: username,
		Role:     "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.cfg.JWT.SecretKey))
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// ParseJWT validates an admin token and returns its claims.
func (s *AuthService) ParseJWT(tokenString string) (*AdminJWTClaims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	token, err := parser.ParseWithClaims(tokenString, &AdminJWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWT.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*AdminJWTClaims); ok && token.Valid {
		if claims.Role != "admin" {
			return nil, errors.New("invalid token role")
		}
		return claims, nil
	}

	return nil, errors.New("invalid token")
}

// Login checks the configured credential pair and issues a token.
func (s *AuthService) Login(username, password string) (string, time.Time, error) {
	usernameOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.Admin.Username)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.Admin.Password)) == 1
	if !usernameOK || !passwordOK {
		return "", time.Time{}, ErrInvalidCredentials
	}
	return s.GenerateJWT(username)
}
