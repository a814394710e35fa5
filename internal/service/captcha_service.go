package service

import (
	"strings"
	"sync"
	"time"

	"github.com/ramani-fashion/api/internal/config"
	"github.com/ramani-fashion/api/internal/constants"

	"github.com/mojocn/base64Captcha"
)

// CaptchaImageChallenge is a generated image challenge.
type CaptchaImageChallenge struct {
	CaptchaID   string `json:"captchaId"`
	ImageBase64 string `json:"imageBase64"`
}

// CaptchaService issues and checks image captchas. Scenes are toggled
// in configuration; a disabled scene verifies as a no-op.
type CaptchaService struct {
	cfg config.CaptchaConfig

	mu    sync.Mutex
	store base64Captcha.Store
}

// NewCaptchaService creates the captcha service.
func NewCaptchaService(cfg config.CaptchaConfig) *CaptchaService {
	return &CaptchaService{cfg: cfg}
}

// SceneEnabled reports whether the scene requires a captcha.
func (s *CaptchaService) SceneEnabled(scene string) bool {
	if s == nil {
		return false
	}
	switch scene {
	case constants.CaptchaSceneAdminLogin:
		return s.cfg.Scenes.AdminLogin
	default:
		return false
	}
}

// GenerateImageChallenge creates an image challenge.
func (s *CaptchaService) GenerateImageChallenge() (*CaptchaImageChallenge, error) {
	driver := base64Captcha.NewDriverString(
		normalizeDim(s.cfg.Image.Height, 80),
		normalizeDim(s.cfg.Image.Width, 240),
		s.cfg.Image.NoiseCount,
		s.cfg.Image.ShowLine,
		normalizeDim(s.cfg.Image.Length, 5),
		"0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ",
		nil,
		base64Captcha.DefaultEmbeddedFonts,
		nil,
	)
	captcha := base64Captcha.NewCaptcha(driver, s.ensureStore())
	id, b64s, _, err := captcha.Generate()
	if err != nil {
		return nil, err
	}
	return &CaptchaImageChallenge{
		CaptchaID:   strings.TrimSpace(id),
		ImageBase64: strings.TrimSpace(b64s),
	}, nil
}

// Verify checks a challenge answer for the scene. Answers are
// single-use.
func (s *CaptchaService) Verify(scene, captchaID, captchaCode string) error {
	if !s.SceneEnabled(scene) {
		return nil
	}
	captchaID = strings.TrimSpace(captchaID)
	captchaCode = strings.TrimSpace(captchaCode)
	if captchaID == "" || captchaCode == "" {
		return ErrCaptchaRequired
	}
	if !s.ensureStore().Verify(captchaID, captchaCode, true) {
		return ErrCaptchaInvalid
	}
	return nil
}

func (s *CaptchaService) ensureStore() base64Captcha.Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.store == nil {
		maxStore := s.cfg.Image.MaxStore
		if maxStore <= 0 {
			maxStore = 10240
		}
		expire := s.cfg.Image.ExpireSeconds
		if expire <= 0 {
			expire = 300
		}
		s.store = base64Captcha.NewMemoryStore(maxStore, time.Duration(expire)*time.Second)
	}
	return s.store
}

func normalizeDim(value, fallback int) int {
	if value > 0 {
		return value
	}
	return fallback
}
