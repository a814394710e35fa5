package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ramani-fashion/api/internal/constants"
	"github.com/ramani-fashion/api/internal/models"
	"github.com/ramani-fashion/api/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupAddressServiceTest(t *testing.T) (*AddressService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Address{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return NewAddressService(repository.NewAddressRepository(db)), db
}

func testAddressInput(name string) AddressInput {
	return AddressInput{
		FullName: name,
		Phone:    "9876543210",
		Pincode:  "600001",
		Address:  "12 Temple Street",
		City:     "Chennai",
		State:    "Tamil Nadu",
	}
}

func countDefaults(t *testing.T, db *gorm.DB, userID uint) int64 {
	t.Helper()
	var count int64
	if err := db.Model(&models.Address{}).Where("user_id = ? AND is_default = ?", userID, true).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	return count
}

func TestCreateAddressValidatesRequiredFields(t *testing.T) {
	svc, _ := setupAddressServiceTest(t)

	input := testAddressInput("Priya")
	input.City = "   "
	if _, err := svc.Create(1, input); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput got %v", err)
	}

	input = testAddressInput("Priya")
	input.AddressType = "warehouse"
	if _, err := svc.Create(1, input); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("bad type: want ErrInvalidInput got %v", err)
	}
}

func TestCreateAddressDefaultsTypeToHome(t *testing.T) {
	svc, _ := setupAddressServiceTest(t)

	address, err := svc.Create(1, testAddressInput("Priya"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if address.AddressType != constants.AddressTypeHome {
		t.Fatalf("type want home got %s", address.AddressType)
	}
}

func TestMarkingDefaultClearsPreviousDefault(t *testing.T) {
	svc, db := setupAddressServiceTest(t)

	first := testAddressInput("Home")
	first.IsDefault = true
	if _, err := svc.Create(1, first); err != nil {
		t.Fatalf("create first failed: %v", err)
	}

	second := testAddressInput("Office")
	second.AddressType = constants.AddressTypeOffice
	second.IsDefault = true
	created, err := svc.Create(1, second)
	if err != nil {
		t.Fatalf("create second failed: %v", err)
	}

	if got := countDefaults(t, db, 1); got != 1 {
		t.Fatalf("defaults want 1 got %d", got)
	}
	var current models.Address
	if err := db.Where("user_id = ? AND is_default = ?", 1, true).First(&current).Error; err != nil {
		t.Fatalf("fetch default failed: %v", err)
	}
	if current.ID != created.ID {
		t.Fatalf("default want %d got %d", created.ID, current.ID)
	}
}

func TestUpdateAddressCanTakeOverDefault(t *testing.T) {
	svc, db := setupAddressServiceTest(t)

	first := testAddressInput("Home")
	first.IsDefault = true
	kept, err := svc.Create(1, first)
	if err != nil {
		t.Fatalf("create first failed: %v", err)
	}
	second, err := svc.Create(1, testAddressInput("Office"))
	if err != nil {
		t.Fatalf("create second failed: %v", err)
	}

	update := testAddressInput("Office")
	update.IsDefault = true
	if _, err := svc.Update(second.ID, 1, update); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if got := countDefaults(t, db, 1); got != 1 {
		t.Fatalf("defaults want 1 got %d", got)
	}
	var old models.Address
	if err := db.First(&old, kept.ID).Error; err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if old.IsDefault {
		t.Fatalf("previous default not cleared")
	}
}

func TestDefaultsAreScopedPerUser(t *testing.T) {
	svc, db := setupAddressServiceTest(t)

	mine := testAddressInput("Mine")
	mine.IsDefault = true
	if _, err := svc.Create(1, mine); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	theirs := testAddressInput("Theirs")
	theirs.IsDefault = true
	if _, err := svc.Create(2, theirs); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if got := countDefaults(t, db, 1); got != 1 {
		t.Fatalf("user 1 defaults want 1 got %d", got)
	}
	if got := countDefaults(t, db, 2); got != 1 {
		t.Fatalf("user 2 defaults want 1 got %d", got)
	}
}

func TestUpdateAndDeleteEnforceOwnership(t *testing.T) {
	svc, _ := setupAddressServiceTest(t)

	address, err := svc.Create(1, testAddressInput("Priya"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := svc.Update(address.ID, 2, testAddressInput("Hijack")); !errors.Is(err, ErrNotFound) {
		t.Fatalf("update: want ErrNotFound got %v", err)
	}
	if err := svc.Delete(address.ID, 2); !errors.Is(err, ErrNotFound) {
		t.Fatalf("delete: want ErrNotFound got %v", err)
	}
	if err := svc.Delete(address.ID, 1); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if err := svc.Delete(address.ID, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("repeat delete: want ErrNotFound got %v", err)
	}
}
