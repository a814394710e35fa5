package admin

import (
	"errors"
	"net/http"

	"github.com/ramani-fashion/api/internal/constants"
	"github.com/ramani-fashion/api/internal/http/response"
	"github.com/ramani-fashion/api/internal/service"

	"github.com/gin-gonic/gin"
)

// LoginRequest is the admin login payload.
type LoginRequest struct {
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"required"`
	CaptchaID   string `json:"captchaId"`
	CaptchaCode string `json:"captchaCode"`
}

// Login authenticates the configured back-office credential pair.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Username and password are required", err)
		return
	}

	if h.CaptchaService != nil {
		if err := h.CaptchaService.Verify(constants.CaptchaSceneAdminLogin, req.CaptchaID, req.CaptchaCode); err != nil {
			switch {
			case errors.Is(err, service.ErrCaptchaRequired):
				respondError(c, http.StatusBadRequest, "Captcha is required", nil)
			case errors.Is(err, service.ErrCaptchaInvalid):
				respondError(c, http.StatusBadRequest, "Invalid captcha", nil)
			default:
				respondError(c, http.StatusInternalServerError, "Captcha verification failed", err)
			}
			return
		}
	}

	token, expiresAt, err := h.AuthService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, "Invalid admin credentials", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "Login failed", err)
		return
	}

	response.OK(c, gin.H{
		"token": token,
		"user": gin.H{
			"id":       service.AdminID,
			"username": req.Username,
			"role":     "admin",
		},
		"expiresAt": expiresAt,
	})
}

// Verify confirms the bearer token is a live admin token.
func (h *Handler) Verify(c *gin.Context) {
	username := c.GetString("admin_username")
	response.OK(c, gin.H{
		"valid": true,
		"user": gin.H{
			"id":       service.AdminID,
			"username": username,
			"role":     "admin",
		},
	})
}

// GetCaptcha issues an image challenge for the admin login scene.
func (h *Handler) GetCaptcha(c *gin.Context) {
	if !h.CaptchaService.SceneEnabled(constants.CaptchaSceneAdminLogin) {
		response.OK(c, gin.H{"enabled": false})
		return
	}

	challenge, err := h.CaptchaService.GenerateImageChallenge()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to generate captcha", err)
		return
	}
	response.OK(c, gin.H{
		"enabled":     true,
		"captchaId":   challenge.CaptchaID,
		"imageBase64": challenge.ImageBase64,
	})
}
