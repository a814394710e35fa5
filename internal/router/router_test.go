package router

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ramani-fashion/api/internal/config"
	"github.com/ramani-fashion/api/internal/models"
	"github.com/ramani-fashion/api/internal/provider"
	"github.com/ramani-fashion/api/internal/repository"
	"github.com/ramani-fashion/api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupAPITestRouter(t *testing.T) (*gin.Engine, *provider.Container, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{}, &models.OTP{}, &models.Product{}, &models.Address{},
		&models.CartItem{}, &models.WishlistItem{}, &models.Order{},
		&models.OrderItem{}, &models.ContactSubmission{},
	); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	cfg := &config.Config{
		Server:  config.ServerConfig{Mode: "debug"},
		Admin:   config.AdminConfig{Username: "admin@ramanifashion.com", Password: "s3cure-admin-pass"},
		JWT:     config.JWTConfig{SecretKey: "admin-test-secret-with-enough-entropy", ExpireHours: 24},
		UserJWT: config.JWTConfig{SecretKey: "user-test-secret-with-enough-entropy", ExpireHours: 72},
		OTP:     config.OTPConfig{ExpireMinutes: 10, Length: 6, DevCode: "123456"},
		Order:   config.OrderConfig{NumberPrefix: "RM"},
	}

	c := &provider.Container{Config: cfg}
	c.UserRepo = repository.NewUserRepository(db)
	c.OTPRepo = repository.NewOTPRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.AddressRepo = repository.NewAddressRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.WishlistRepo = repository.NewWishlistRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.ContactRepo = repository.NewContactRepository(db)

	c.AuthService = service.NewAuthService(cfg)
	c.CaptchaService = service.NewCaptchaService(cfg.Captcha)
	c.OTPService = service.NewOTPService(cfg, c.OTPRepo, nil)
	c.UserAuthService = service.NewUserAuthService(cfg, c.UserRepo, c.OTPService)
	c.ProductService = service.NewProductService(c.ProductRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo)
	c.WishlistService = service.NewWishlistService(c.WishlistRepo, c.ProductRepo)
	c.OrderService = service.NewOrderService(cfg, c.OrderRepo, c.CartRepo, nil)
	c.AddressService = service.NewAddressService(c.AddressRepo)
	c.ContactService = service.NewContactService(c.ContactRepo)
	c.AnalyticsService = service.NewAnalyticsService(c.ProductRepo, c.UserRepo, c.OrderRepo, c.WishlistRepo)

	return SetupRouter(cfg, c), c, db
}

func adminTestToken(t *testing.T, c *provider.Container) string {
	t.Helper()
	token, _, err := c.AuthService.GenerateJWT(c.Config.Admin.Username)
	if err != nil {
		t.Fatalf("generate admin token failed: %v", err)
	}
	return token
}

func userTestToken(t *testing.T, c *provider.Container, db *gorm.DB) (string, *models.User) {
	t.Helper()
	user := &models.User{
		Name: "Priya", Email: "priya@example.com",
		PasswordHash: "x", Phone: "9876543210", PhoneVerified: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	token, _, err := c.UserAuthService.GenerateUserJWT(user)
	if err != nil {
		t.Fatalf("generate user token failed: %v", err)
	}
	return token, user
}

func TestProductWriteAliasesRequireAdminToken(t *testing.T) {
	engine, _, _ := setupAPITestRouter(t)

	body := `{"name":"Kanjivaram","price":12999,"category":"Silk Sarees","stockQuantity":5}`
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("POST", "/api/products", strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("status want 401 got %d", recorder.Code)
	}
}

func TestProductWriteAliasesShareAdminHandlers(t *testing.T) {
	engine, c, db := setupAPITestRouter(t)
	token := adminTestToken(t, c)

	body := `{"name":"Kanjivaram","price":12999,"category":"Silk Sarees","stockQuantity":5}`
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("POST", "/api/products", strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Authorization", "Bearer "+token)
	engine.ServeHTTP(recorder, request)
	if recorder.Code != http.StatusCreated {
		t.Fatalf("create: status want 201 got %d: %s", recorder.Code, recorder.Body.String())
	}

	var product models.Product
	if err := db.Where("name = ?", "Kanjivaram").First(&product).Error; err != nil {
		t.Fatalf("product not persisted: %v", err)
	}

	update := `{"name":"Kanjivaram Royal","price":13999,"category":"Silk Sarees","stockQuantity":5}`
	recorder = httptest.NewRecorder()
	request = httptest.NewRequest("PUT", fmt.Sprintf("/api/products/%d", product.ID), strings.NewReader(update))
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Authorization", "Bearer "+token)
	engine.ServeHTTP(recorder, request)
	if recorder.Code != http.StatusOK {
		t.Fatalf("update: status want 200 got %d: %s", recorder.Code, recorder.Body.String())
	}

	recorder = httptest.NewRecorder()
	request = httptest.NewRequest("DELETE", fmt.Sprintf("/api/products/%d", product.ID), nil)
	request.Header.Set("Authorization", "Bearer "+token)
	engine.ServeHTTP(recorder, request)
	if recorder.Code != http.StatusOK {
		t.Fatalf("delete: status want 200 got %d: %s", recorder.Code, recorder.Body.String())
	}
}

func TestWishlistAddAcceptsPathParameter(t *testing.T) {
	engine, c, db := setupAPITestRouter(t)
	token, user := userTestToken(t, c, db)

	product := &models.Product{
		Name:     "Saved Saree",
		Price:    models.NewMoneyFromDecimal(decimal.NewFromInt(1000)),
		Category: "Silk Sarees",
		InStock:  true,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("POST", fmt.Sprintf("/api/wishlist/%d", product.ID), nil)
	request.Header.Set("Authorization", "Bearer "+token)
	engine.ServeHTTP(recorder, request)
	if recorder.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d: %s", recorder.Code, recorder.Body.String())
	}

	items, err := c.WishlistService.ListByUser(user.ID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 1 || items[0].ProductID != product.ID {
		t.Fatalf("wishlist not updated: %+v", items)
	}
}
