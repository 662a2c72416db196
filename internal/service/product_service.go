package service

import (
	"context"

	"github.com/souq-next/internal/models"
	"github.com/souq-next/internal/repository"
)

// ProductView 带报价的商品视图
type ProductView struct {
	Product models.Product `json:"product"`
	Quote   PriceQuote     `json:"quote"`
}

// ProductService 商品查询，报价随查随算
type ProductService struct {
	productRepo repository.ProductRepository
	saleService *SaleService
	pricing     *PricingService
}

// NewProductService 创建商品服务
func NewProductService(productRepo repository.ProductRepository, saleService *SaleService, pricing *PricingService) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		saleService: saleService,
		pricing:     pricing,
	}
}

// List 获取上架商品列表（含报价）
func (s *ProductService) List(ctx context.Context, filter repository.ProductListFilter) ([]ProductView, int64, error) {
	filter.OnlyActive = true
	products, total, err := s.productRepo.List(filter)
	if err != nil {
		return nil, 0, err
	}
	sales, err := s.saleService.ListActive(ctx)
	if err != nil {
		return nil, 0, err
	}
	views := make([]ProductView, 0, len(products))
	for i := range products {
		quote, err := s.pricing.Quote(&products[i], sales)
		if err != nil {
			return nil, 0, err
		}
		views = append(views, ProductView{Product: products[i], Quote: *quote})
	}
	return views, total, nil
}

// GetBySlug 根据别名获取上架商品（含报价）
func (s *ProductService) GetBySlug(ctx context.Context, slug string) (*ProductView, error) {
	product, err := s.productRepo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if !product.IsActive {
		return nil, ErrProductNotAvailable
	}
	sales, err := s.saleService.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	quote, err := s.pricing.Quote(product, sales)
	if err != nil {
		return nil, err
	}
	return &ProductView{Product: *product, Quote: *quote}, nil
}
