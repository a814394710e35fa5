package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/ramani-fashion/api/internal/config"
	"github.com/ramani-fashion/api/internal/models"
	"github.com/ramani-fashion/api/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupOTPServiceTest(t *testing.T) (*OTPService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.OTP{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	cfg := &config.Config{
		OTP: config.OTPConfig{ExpireMinutes: 10, Length: 6, DevCode: "123456"},
	}
	return NewOTPService(cfg, repository.NewOTPRepository(db), nil), db
}

func TestSendEchoesDevCodeWhenSMSDisabled(t *testing.T) {
	svc, _ := setupOTPServiceTest(t)

	result, err := svc.Send("9876543210")
	if err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if !result.Echoed {
		t.Fatalf("expected echoed code with SMS disabled")
	}
	if result.Code != "123456" {
		t.Fatalf("code want 123456 got %s", result.Code)
	}
	if !result.ExpiresAt.After(time.Now()) {
		t.Fatalf("expiry not in the future: %v", result.ExpiresAt)
	}
}

func TestSendInvalidatesPreviousCode(t *testing.T) {
	svc, db := setupOTPServiceTest(t)

	if _, err := svc.Send("9876543210"); err != nil {
		t.Fatalf("first send failed: %v", err)
	}
	if _, err := svc.Send("9876543210"); err != nil {
		t.Fatalf("second send failed: %v", err)
	}

	var count int64
	if err := db.Model(&models.OTP{}).Where("phone = ?", "9876543210").Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("live records want 1 got %d", count)
	}
}

func TestVerifyRejectsWrongCode(t *testing.T) {
	svc, _ := setupOTPServiceTest(t)

	if _, err := svc.Send("9876543210"); err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if err := svc.Verify("9876543210", "000000"); !errors.Is(err, ErrOTPInvalid) {
		t.Fatalf("want ErrOTPInvalid got %v", err)
	}
	if err := svc.Verify("9876543210", "123456"); err != nil {
		t.Fatalf("verify failed: %v", err)
	}
}

func TestVerifyRejectsUnknownPhone(t *testing.T) {
	svc, _ := setupOTPServiceTest(t)
	if err := svc.Verify("1112223333", "123456"); !errors.Is(err, ErrOTPInvalid) {
		t.Fatalf("want ErrOTPInvalid got %v", err)
	}
}

func TestVerifyPurgesExpiredCode(t *testing.T) {
	svc, db := setupOTPServiceTest(t)

	if _, err := svc.Send("9876543210"); err != nil {
		t.Fatalf("send failed: %v", err)
	}
	expired := time.Now().Add(-time.Minute)
	if err := db.Model(&models.OTP{}).Where("phone = ?", "9876543210").Update("expires_at", expired).Error; err != nil {
		t.Fatalf("expire failed: %v", err)
	}

	if err := svc.Verify("9876543210", "123456"); !errors.Is(err, ErrOTPExpired) {
		t.Fatalf("want ErrOTPExpired got %v", err)
	}

	var count int64
	if err := db.Model(&models.OTP{}).Where("phone = ?", "9876543210").Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expired record not purged, count %d", count)
	}
}

func TestVerifyReportsWrongCodeBeforeExpiry(t *testing.T) {
	svc, db := setupOTPServiceTest(t)

	if _, err := svc.Send("9876543210"); err != nil {
		t.Fatalf("send failed: %v", err)
	}
	expired := time.Now().Add(-time.Minute)
	if err := db.Model(&models.OTP{}).Where("phone = ?", "9876543210").Update("expires_at", expired).Error; err != nil {
		t.Fatalf("expire failed: %v", err)
	}

	// A mismatched code reads as invalid even when the record has
	// expired, and the record survives for a matching retry.
	if err := svc.Verify("9876543210", "000000"); !errors.Is(err, ErrOTPInvalid) {
		t.Fatalf("want ErrOTPInvalid got %v", err)
	}
	var count int64
	if err := db.Model(&models.OTP{}).Where("phone = ?", "9876543210").Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("record purged on code mismatch, count %d", count)
	}
}

func TestConsumeVerifiedRequiresVerification(t *testing.T) {
	svc, _ := setupOTPServiceTest(t)

	if err := svc.ConsumeVerified("9876543210"); !errors.Is(err, ErrPhoneNotVerified) {
		t.Fatalf("want ErrPhoneNotVerified got %v", err)
	}

	if _, err := svc.Send("9876543210"); err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if err := svc.ConsumeVerified("9876543210"); !errors.Is(err, ErrPhoneNotVerified) {
		t.Fatalf("unverified code must not pass, got %v", err)
	}
}

func TestConsumeVerifiedBurnsTheRecord(t *testing.T) {
	svc, _ := setupOTPServiceTest(t)

	if _, err := svc.Send("9876543210"); err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if err := svc.Verify("9876543210", "123456"); err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if err := svc.ConsumeVerified("9876543210"); err != nil {
		t.Fatalf("consume failed: %v", err)
	}
	// A consumed record cannot gate a second registration.
	if err := svc.ConsumeVerified("9876543210"); !errors.Is(err, ErrPhoneNotVerified) {
		t.Fatalf("want ErrPhoneNotVerified got %v", err)
	}
}
