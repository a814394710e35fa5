package service

import (
	"crypto/rand"
	"math/big"
	"strings"
	"time"

	"github.com/ramani-fashion/api/internal/config"
	"github.com/ramani-fashion/api/internal/logger"
	"github.com/ramani-fashion/api/internal/models"
	"github.com/ramani-fashion/api/internal/queue"
	"github.com/ramani-fashion/api/internal/repository"
)

// OTPSendResult is the outcome of issuing a code. The code itself is
// only echoed when SMS delivery is disabled (development setups).
type OTPSendResult struct {
	Phone     string
	Code      string
	Echoed    bool
	ExpiresAt time.Time
}

// OTPService manages the phone verification state machine:
// none -> issued -> verified -> consumed (by registration).
type OTPService struct {
	cfg         *config.Config
	otpRepo     repository.OTPRepository
	queueClient *queue.Client
}

// NewOTPService creates the OTP service.
func NewOTPService(cfg *config.Config, otpRepo repository.OTPRepository, queueClient *queue.Client) *OTPService {
	return &OTPService{
		cfg:         cfg,
		otpRepo:     otpRepo,
		queueClient: queueClient,
	}
}

// Send issues a fresh code for the phone, invalidating any prior one.
// With SMS enabled the code is random and dispatched asynchronously;
// otherwise the static development code is stored and echoed back.
func (s *OTPService) Send(phone string) (*OTPSendResult, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, ErrInvalidInput
	}

	if err := s.otpRepo.DeleteByPhone(phone); err != nil {
		return nil, err
	}

	expireMinutes := s.cfg.OTP.ExpireMinutes
	if expireMinutes <= 0 {
		expireMinutes = 10
	}

	code := s.cfg.OTP.DevCode
	echoed := true
	if s.cfg.SMS.Enabled {
		length := s.cfg.OTP.Length
		if length <= 0 {
			length = 6
		}
		generated, err := randomNumericCode(length)
		if err != nil {
			return nil, err
		}
		code = generated
		echoed = false
	}

	record := &models.OTP{
		Phone:     phone,
		Code:      code,
		ExpiresAt: time.Now().Add(time.Duration(expireMinutes) * time.Minute),
	}
	if err := s.otpRepo.Create(record); err != nil {
		return nil, err
	}

	if s.cfg.SMS.Enabled {
		if err := s.queueClient.EnqueueSendOTPSMS(queue.SendOTPSMSPayload{
			Phone: phone,
			Code:  code,
		}); err != nil {
			logger.Warnw("otp_sms_enqueue_failed", "phone", phone, "error", err)
		}
	}

	result := &OTPSendResult{
		Phone:     phone,
		Code:      code,
		Echoed:    echoed,
		ExpiresAt: record.ExpiresAt,
	}
	if !echoed {
		result.Code = ""
	}
	return result, nil
}

// Verify checks the submitted code against the latest issued one and
// flags the record verified. The code must match before expiry is
// consulted, so a wrong code always reads as invalid rather than
// leaking whether a code was ever issued. The record is kept for
// registration to consume; an expired match is purged.
func (s *OTPService) Verify(phone, code string) error {
	phone = strings.TrimSpace(phone)
	code = strings.TrimSpace(code)
	if phone == "" || code == "" {
		return ErrInvalidInput
	}

	record, err := s.otpRepo.GetLatestByPhone(phone)
	if err != nil {
		return err
	}
	if record == nil || record.Code != code {
		return ErrOTPInvalid
	}
	if time.Now().After(record.ExpiresAt) {
		_ = s.otpRepo.DeleteByID(record.ID)
		return ErrOTPExpired
	}
	return s.otpRepo.MarkVerified(record.ID)
}

// CheckVerified reports whether a live verified record exists for the
// phone, leaving it in place.
func (s *OTPService) CheckVerified(phone string) error {
	record, err := s.otpRepo.GetLatestByPhone(phone)
	if err != nil {
		return err
	}
	if record == nil || !record.Verified || time.Now().After(record.ExpiresAt) {
		return ErrPhoneNotVerified
	}
	return nil
}

// ConsumeVerified burns the verified record for the phone. It fails
// when no live verified record exists, which is how registration
// enforces the OTP gate.
func (s *OTPService) ConsumeVerified(phone string) error {
	record, err := s.otpRepo.GetLatestByPhone(phone)
	if err != nil {
		return err
	}
	if record == nil || !record.Verified || time.Now().After(record.ExpiresAt) {
		return ErrPhoneNotVerified
	}
	return s.otpRepo.DeleteByID(record.ID)
}

// randomNumericCode generates a numeric code of the given length.
func randomNumericCode(length int) (string, error) {
	digits := make([]byte, length)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}
