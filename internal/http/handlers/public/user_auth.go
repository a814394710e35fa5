package public

import (
	"errors"
	"net/http"

	"github.com/ramani-fashion/api/internal/http/response"
	"github.com/ramani-fashion/api/internal/service"

	"github.com/gin-gonic/gin"
)

// SendOTPRequest is the send-otp payload.
type SendOTPRequest struct {
	Phone string `json:"phone" binding:"required"`
}

// SendOTP issues a verification code for the phone.
func (h *Handler) SendOTP(c *gin.Context) {
	var req SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Phone number is required", err)
		return
	}

	result, err := h.OTPService.Send(req.Phone)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			respondError(c, http.StatusBadRequest, "Phone number is required", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to send OTP", err)
		return
	}

	body := gin.H{
		"message":   "OTP sent successfully",
		"expiresAt": result.ExpiresAt,
	}
	// Development convenience: with SMS delivery disabled the code is
	// echoed so the flow can be exercised end to end.
	if result.Echoed {
		body["otp"] = result.Code
	}
	response.OK(c, body)
}

// VerifyOTPRequest is the verify-otp payload.
type VerifyOTPRequest struct {
	Phone string `json:"phone" binding:"required"`
	Code  string `json:"code" binding:"required"`
}

// VerifyOTP checks the submitted code.
func (h *Handler) VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Phone and code are required", err)
		return
	}

	if err := h.OTPService.Verify(req.Phone, req.Code); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			respondError(c, http.StatusBadRequest, "Phone and code are required", nil)
		case errors.Is(err, service.ErrOTPExpired):
			respondError(c, http.StatusBadRequest, "OTP expired", nil)
		case errors.Is(err, service.ErrOTPInvalid):
			respondError(c, http.StatusBadRequest, "Invalid OTP", nil)
		default:
			respondError(c, http.StatusInternalServerError, "Failed to verify OTP", err)
		}
		return
	}
	response.OK(c, gin.H{"verified": true})
}

// RegisterRequest is the registration payload.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
}

// Register creates an account. The phone must carry a verified OTP.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Name, email, password and phone are required", err)
		return
	}

	user, token, err := h.UserAuthService.Register(service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			respondError(c, http.StatusBadRequest, "Name, email, password and phone are required", nil)
		case errors.Is(err, service.ErrEmailTaken):
			respondError(c, http.StatusBadRequest, "Email already registered", nil)
		case errors.Is(err, service.ErrPhoneNotVerified):
			respondError(c, http.StatusBadRequest, "Please verify your mobile number with OTP first", nil)
		default:
			respondError(c, http.StatusInternalServerError, "Registration failed", err)
		}
		return
	}

	response.Created(c, gin.H{
		"user":  user,
		"token": token,
	})
}

// LoginRequest is the login payload. Phone is only consulted for
// accounts that still need phone verification.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Phone    string `json:"phone"`
}

// Login verifies the password and issues a token.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Email and password are required", err)
		return
	}

	user, token, err := h.UserAuthService.Login(req.Email, req.Password, req.Phone)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			respondError(c, http.StatusUnauthorized, "Invalid credentials", nil)
		case errors.Is(err, service.ErrPhoneRequired):
			respondError(c, http.StatusBadRequest, "Please provide your mobile number and verify with OTP", nil)
		case errors.Is(err, service.ErrPhoneMismatch):
			respondError(c, http.StatusBadRequest, "Phone number does not match your account", nil)
		case errors.Is(err, service.ErrPhoneNotVerified):
			respondError(c, http.StatusForbidden, "Please verify your mobile number with OTP first", nil)
		default:
			respondError(c, http.StatusInternalServerError, "Login failed", err)
		}
		return
	}

	response.OK(c, gin.H{
		"user":  user,
		"token": token,
	})
}

// GetCurrentUser returns the authenticated account.
func (h *Handler) GetCurrentUser(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	user, err := h.UserAuthService.GetByID(uid)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, http.StatusNotFound, "User not found", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to fetch user", err)
		return
	}
	response.OK(c, user)
}
