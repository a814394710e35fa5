package provider

import (
	"github.com/ramani-fashion/api/internal/cache"
	"github.com/ramani-fashion/api/internal/config"
	"github.com/ramani-fashion/api/internal/logger"
	"github.com/ramani-fashion/api/internal/models"
	"github.com/ramani-fashion/api/internal/queue"
	"github.com/ramani-fashion/api/internal/repository"
	"github.com/ramani-fashion/api/internal/service"
)

// Container wires repositories and services together.
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	UserRepo     repository.UserRepository
	OTPRepo      repository.OTPRepository
	ProductRepo  repository.ProductRepository
	AddressRepo  repository.AddressRepository
	CartRepo     repository.CartRepository
	WishlistRepo repository.WishlistRepository
	OrderRepo    repository.OrderRepository
	ContactRepo  repository.ContactRepository

	// Services
	AuthService      *service.AuthService
	UserAuthService  *service.UserAuthService
	OTPService       *service.OTPService
	CaptchaService   *service.CaptchaService
	ProductService   *service.ProductService
	CartService      *service.CartService
	WishlistService  *service.WishlistService
	OrderService     *service.OrderService
	AddressService   *service.AddressService
	ContactService   *service.ContactService
	AnalyticsService *service.AnalyticsService
}

// NewContainer initializes the container.
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.OTPRepo = repository.NewOTPRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.AddressRepo = repository.NewAddressRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.WishlistRepo = repository.NewWishlistRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.ContactRepo = repository.NewContactRepository(db)
}

func (c *Container) initServices() {
	c.AuthService = service.NewAuthService(c.Config)
	c.CaptchaService = service.NewCaptchaService(c.Config.Captcha)
	c.OTPService = service.NewOTPService(c.Config, c.OTPRepo, c.QueueClient)
	c.UserAuthService = service.NewUserAuthService(c.Config, c.UserRepo, c.OTPService)
	c.ProductService = service.NewProductService(c.ProductRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo)
	c.WishlistService = service.NewWishlistService(c.WishlistRepo, c.ProductRepo)
	c.OrderService = service.NewOrderService(c.Config, c.OrderRepo, c.CartRepo, c.QueueClient)
	c.AddressService = service.NewAddressService(c.AddressRepo)
	c.ContactService = service.NewContactService(c.ContactRepo)
	c.AnalyticsService = service.NewAnalyticsService(c.ProductRepo, c.UserRepo, c.OrderRepo, c.WishlistRepo)
}
