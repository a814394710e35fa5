package service

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/ramani-fashion/api/internal/config"
	"github.com/ramani-fashion/api/internal/constants"
	"github.com/ramani-fashion/api/internal/models"
	"github.com/ramani-fashion/api/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupOrderServiceTest(t *testing.T) (*OrderService, repository.CartRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.CartItem{}, &models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	cfg := &config.Config{Order: config.OrderConfig{NumberPrefix: "RM"}}
	cartRepo := repository.NewCartRepository(db)
	svc := NewOrderService(cfg, repository.NewOrderRepository(db), cartRepo, nil)
	return svc, cartRepo, db
}

func createOrderTestProduct(t *testing.T, db *gorm.DB, name string, price int64) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:          name,
		Price:         models.NewMoneyFromDecimal(decimal.NewFromInt(price)),
		Category:      "Silk Sarees",
		Images:        models.StringArray{"/images/test.jpg"},
		InStock:       true,
		StockQuantity: 10,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func testShippingAddress() ShippingAddressInput {
	return ShippingAddressInput{
		FullName: "Priya Sharma",
		Phone:    "9876543210",
		Pincode:  "600001",
		Address:  "12 Temple Street",
		City:     "Chennai",
		State:    "Tamil Nadu",
	}
}

func TestCreateOrderRejectsEmptyCart(t *testing.T) {
	svc, _, _ := setupOrderServiceTest(t)

	_, err := svc.Create(CreateOrderInput{
		UserID:          1,
		ShippingAddress: testShippingAddress(),
		PaymentMethod:   "cod",
	})
	if !errors.Is(err, ErrCartEmpty) {
		t.Fatalf("want ErrCartEmpty got %v", err)
	}
}

func TestCreateOrderSnapshotsCartAndClearsIt(t *testing.T) {
	svc, cartRepo, db := setupOrderServiceTest(t)
	saree := createOrderTestProduct(t, db, "Kanjivaram", 12999)
	cotton := createOrderTestProduct(t, db, "Chanderi", 2499)

	if err := cartRepo.AddQuantity(&models.CartItem{UserID: 1, ProductID: saree.ID, Quantity: 2}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := cartRepo.AddQuantity(&models.CartItem{UserID: 1, ProductID: cotton.ID, Quantity: 1}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	order, err := svc.Create(CreateOrderInput{
		UserID:          1,
		ShippingAddress: testShippingAddress(),
		PaymentMethod:   "cod",
		ShippingCharges: 100,
		Tax:             0,
		Discount:        500,
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if !strings.HasPrefix(order.OrderNumber, "RM") {
		t.Fatalf("order number missing prefix: %s", order.OrderNumber)
	}
	if len(order.Items) != 2 {
		t.Fatalf("items want 2 got %d", len(order.Items))
	}
	// 2*12999 + 1*2499 = 28497; + 100 shipping - 500 discount = 28097
	if got := order.Subtotal.String(); got != "28497.00" {
		t.Fatalf("subtotal want 28497.00 got %s", got)
	}
	if got := order.Total.String(); got != "28097.00" {
		t.Fatalf("total want 28097.00 got %s", got)
	}
	if order.OrderStatus != constants.OrderStatusPending {
		t.Fatalf("order status want pending got %s", order.OrderStatus)
	}
	if order.PaymentStatus != constants.PaymentStatusPending {
		t.Fatalf("payment status want pending got %s", order.PaymentStatus)
	}

	items, err := cartRepo.ListByUser(1)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("cart not cleared, %d lines left", len(items))
	}
}

func TestOrderItemsAreImmutableSnapshots(t *testing.T) {
	svc, cartRepo, db := setupOrderServiceTest(t)
	saree := createOrderTestProduct(t, db, "Banarasi", 9499)

	if err := cartRepo.AddQuantity(&models.CartItem{UserID: 1, ProductID: saree.ID, Quantity: 1}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	order, err := svc.Create(CreateOrderInput{
		UserID:          1,
		ShippingAddress: testShippingAddress(),
		PaymentMethod:   "cod",
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	// A later catalog edit must not touch the placed order.
	saree.Name = "Banarasi (Renamed)"
	saree.Price = models.NewMoneyFromDecimal(decimal.NewFromInt(19999))
	if err := db.Save(saree).Error; err != nil {
		t.Fatalf("update product failed: %v", err)
	}

	fetched, err := svc.GetForUser(order.ID, 1)
	if err != nil {
		t.Fatalf("get order failed: %v", err)
	}
	if len(fetched.Items) != 1 {
		t.Fatalf("items want 1 got %d", len(fetched.Items))
	}
	if fetched.Items[0].Name != "Banarasi" {
		t.Fatalf("snapshot name changed: %s", fetched.Items[0].Name)
	}
	if got := fetched.Items[0].Price.String(); got != "9499.00" {
		t.Fatalf("snapshot price changed: %s", got)
	}
}

func TestCreateOrderLeavesCartOnValidationFailure(t *testing.T) {
	svc, cartRepo, db := setupOrderServiceTest(t)
	saree := createOrderTestProduct(t, db, "Tussar", 5799)
	if err := cartRepo.AddQuantity(&models.CartItem{UserID: 1, ProductID: saree.ID, Quantity: 1}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	incomplete := testShippingAddress()
	incomplete.Pincode = "  "
	if _, err := svc.Create(CreateOrderInput{
		UserID:          1,
		ShippingAddress: incomplete,
		PaymentMethod:   "cod",
	}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput got %v", err)
	}

	// Discount exceeding the order total is also rejected pre-commit.
	if _, err := svc.Create(CreateOrderInput{
		UserID:          1,
		ShippingAddress: testShippingAddress(),
		PaymentMethod:   "cod",
		Discount:        99999,
	}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput got %v", err)
	}

	items, err := cartRepo.ListByUser(1)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("cart want 1 line got %d", len(items))
	}
}

func TestGetForUserHidesOtherUsersOrders(t *testing.T) {
	svc, cartRepo, db := setupOrderServiceTest(t)
	saree := createOrderTestProduct(t, db, "Linen", 1899)
	if err := cartRepo.AddQuantity(&models.CartItem{UserID: 1, ProductID: saree.ID, Quantity: 1}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	order, err := svc.Create(CreateOrderInput{
		UserID:          1,
		ShippingAddress: testShippingAddress(),
		PaymentMethod:   "cod",
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	if _, err := svc.GetForUser(order.ID, 2); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound got %v", err)
	}
}

func TestUpdateStatusValidatesValues(t *testing.T) {
	svc, cartRepo, db := setupOrderServiceTest(t)
	saree := createOrderTestProduct(t, db, "Bandhani", 3299)
	if err := cartRepo.AddQuantity(&models.CartItem{UserID: 1, ProductID: saree.ID, Quantity: 1}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	order, err := svc.Create(CreateOrderInput{
		UserID:          1,
		ShippingAddress: testShippingAddress(),
		PaymentMethod:   "cod",
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	bogus := "teleported"
	if _, err := svc.UpdateStatus(order.ID, UpdateOrderStatusInput{OrderStatus: &bogus}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput got %v", err)
	}
	if _, err := svc.UpdateStatus(order.ID, UpdateOrderStatusInput{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("empty update: want ErrInvalidInput got %v", err)
	}

	shipped := constants.OrderStatusShipped
	paid := constants.PaymentStatusPaid
	updated, err := svc.UpdateStatus(order.ID, UpdateOrderStatusInput{OrderStatus: &shipped, PaymentStatus: &paid})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.OrderStatus != constants.OrderStatusShipped || updated.PaymentStatus != constants.PaymentStatusPaid {
		t.Fatalf("statuses not applied: %s / %s", updated.OrderStatus, updated.PaymentStatus)
	}

	if _, err := svc.UpdateStatus(99999, UpdateOrderStatusInput{OrderStatus: &shipped}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing order: want ErrNotFound got %v", err)
	}
}
