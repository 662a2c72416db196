package service

import (
	"context"
	"time"

	"github.com/souq-next/internal/cache"
	"github.com/souq-next/internal/constants"
	"github.com/souq-next/internal/logger"
	"github.com/souq-next/internal/models"
	"github.com/souq-next/internal/repository"
)

// activeSalesCacheTTL 生效活动缓存时长。活动窗口按分钟粒度配置，
// 短 TTL 保证开始/结束后很快反映到报价。
const activeSalesCacheTTL = 30 * time.Second

// SaleService 活动价查询，带短缓存
type SaleService struct {
	saleRepo repository.SaleRepository
}

// NewSaleService 创建活动价服务
func NewSaleService(saleRepo repository.SaleRepository) *SaleService {
	return &SaleService{saleRepo: saleRepo}
}

// ListActive 获取当前生效的活动价。缓存不可用或读取失败时直接查库。
func (s *SaleService) ListActive(ctx context.Context) ([]models.Sale, error) {
	var cached []models.Sale
	hit, err := cache.GetJSON(ctx, constants.CacheKeyActiveSales, &cached)
	if err != nil {
		logger.Warnw("active_sales_cache_read_failed", "error", err)
	}
	if hit {
		return cached, nil
	}

	sales, err := s.saleRepo.ListActive(time.Now())
	if err != nil {
		return nil, err
	}
	if err := cache.SetJSON(ctx, constants.CacheKeyActiveSales, sales, activeSalesCacheTTL); err != nil {
		logger.Warnw("active_sales_cache_write_failed", "error", err)
	}
	return sales, nil
}

// InvalidateActive 活动变更后主动失效缓存
func (s *SaleService) InvalidateActive(ctx context.Context) {
	if err := cache.Del(ctx, constants.CacheKeyActiveSales); err != nil {
		logger.Warnw("active_sales_cache_del_failed", "error", err)
	}
}
