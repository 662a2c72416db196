package provider

import (
	"github.com/souq-next/internal/cache"
	"github.com/souq-next/internal/config"
	"github.com/souq-next/internal/logger"
	"github.com/souq-next/internal/models"
	"github.com/souq-next/internal/queue"
	"github.com/souq-next/internal/repository"
	"github.com/souq-next/internal/service"
)

// Container 依赖容器。仓库与服务在进程启动时一次装配，
// handler 与 worker 共用同一份。
type Container struct {
	Config *config.Config

	UserRepo     repository.UserRepository
	CategoryRepo repository.CategoryRepository
	ProductRepo  repository.ProductRepository
	SaleRepo     repository.SaleRepository
	CouponRepo   repository.CouponRepository
	CartRepo     repository.CartRepository
	OrderRepo    repository.OrderRepository
	SettingRepo  repository.SettingRepository

	PricingService  *service.PricingService
	SaleService     *service.SaleService
	CouponService   *service.CouponService
	SettingService  *service.SettingService
	CategoryService *service.CategoryService
	ProductService  *service.ProductService
	CartService     *service.CartService
	OrderService    *service.OrderService

	QueueClient *queue.Client
}

// NewContainer 装配依赖容器
func NewContainer(cfg *config.Config) *Container {
	c := &Container{Config: cfg}

	if err := cache.InitRedis(cache.Config{
		Enable:   cfg.Redis.Enable,
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		Prefix:   cfg.Redis.Prefix,
	}); err != nil {
		logger.Warnw("cache_degraded", "error", err)
	}

	c.QueueClient = queue.NewClient(queue.Config{
		Enable:      cfg.Queue.Enable,
		Addr:        cfg.Queue.Addr,
		Password:    cfg.Queue.Password,
		DB:          cfg.Queue.DB,
		Concurrency: cfg.Queue.Concurrency,
	})

	db := models.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.SaleRepo = repository.NewSaleRepository(db)
	c.CouponRepo = repository.NewCouponRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.SettingRepo = repository.NewSettingRepository(db)

	c.PricingService = service.NewPricingService()
	c.SaleService = service.NewSaleService(c.SaleRepo)
	c.CouponService = service.NewCouponService(c.CouponRepo)
	c.SettingService = service.NewSettingService(
		c.SettingRepo,
		cfg.Shop.Currency,
		models.NewMoneyFromInt(cfg.Shop.DeliveryInsideFee),
		models.NewMoneyFromInt(cfg.Shop.DeliveryOutsideFee),
	)
	c.CategoryService = service.NewCategoryService(c.CategoryRepo)
	c.ProductService = service.NewProductService(c.ProductRepo, c.SaleService, c.PricingService)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo, c.SaleService, c.PricingService, c.SettingService)

	var scheduler service.OrderTimeoutScheduler
	if c.QueueClient != nil {
		scheduler = c.QueueClient
	}
	c.OrderService = service.NewOrderService(
		c.OrderRepo,
		c.CartRepo,
		c.CartService,
		c.CouponService,
		c.SettingService,
		scheduler,
		cfg.Order.PendingExpireMinutes,
	)

	return c
}

// Close 释放外部连接
func (c *Container) Close() {
	if err := c.QueueClient.Close(); err != nil {
		logger.Warnw("queue_close_failed", "error", err)
	}
	if err := cache.Close(); err != nil {
		logger.Warnw("cache_close_failed", "error", err)
	}
}
