package service

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/souq-next/internal/logger"
	"github.com/souq-next/internal/models"
	"github.com/souq-next/internal/repository"
	"gorm.io/gorm"
)

// CartLine 购物车展示行（含报价）
type CartLine struct {
	ProductID  uint         `json:"product_id"`
	CategoryID uint         `json:"category_id"`
	Slug       string       `json:"slug"`
	Name       string       `json:"name"`
	Image      string       `json:"image"`
	Quantity   int          `json:"quantity"`
	Quote      PriceQuote   `json:"quote"`
	LineTotal  models.Money `json:"line_total"`
}

// CartDetail 购物车明细
type CartDetail struct {
	CartID   uint         `json:"cart_id"`
	Items    []CartLine   `json:"items"`
	Subtotal models.Money `json:"subtotal"`
	Currency string       `json:"currency"`
}

// GuestCartItem 游客购物车条目（登录合并用）
type GuestCartItem struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

// CartService 购物车同步。所有写入基于唯一约束 upsert，
// 同一用户并发操作收敛为确定结果。
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	saleService *SaleService
	pricing     *PricingService
	setting     *SettingService
}

// NewCartService 创建购物车服务
func NewCartService(
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	saleService *SaleService,
	pricing *PricingService,
	setting *SettingService,
) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		saleService: saleService,
		pricing:     pricing,
		setting:     setting,
	}
}

// Get 获取购物车明细。已下架或已删除的商品从视图剔除并清理存量行，
// 剩余行按当前活动价重新报价。
func (s *CartService) Get(ctx context.Context, userID uint) (*CartDetail, error) {
	cart, err := s.cartRepo.GetOrCreateByUser(userID)
	if err != nil {
		return nil, err
	}
	items, err := s.cartRepo.ListItems(cart.ID)
	if err != nil {
		return nil, err
	}
	sales, err := s.saleService.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	currency, err := s.setting.GetSiteCurrency()
	if err != nil {
		return nil, err
	}

	detail := &CartDetail{
		CartID:   cart.ID,
		Items:    make([]CartLine, 0, len(items)),
		Currency: currency,
	}
	subtotal := decimal.Zero
	for i := range items {
		item := &items[i]
		if item.Product == nil || !item.Product.IsActive {
			logger.Infow("cart_item_dropped",
				"user_id", userID,
				"product_id", item.ProductID,
			)
			if err := s.cartRepo.DeleteItem(cart.ID, item.ProductID); err != nil {
				logger.Warnw("cart_item_cleanup_failed",
					"user_id", userID,
					"product_id", item.ProductID,
					"error", err,
				)
			}
			continue
		}
		quote, err := s.pricing.Quote(item.Product, sales)
		if err != nil {
			return nil, err
		}
		lineTotal := models.NewMoneyFromDecimal(
			quote.FinalPrice.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity))),
		)
		detail.Items = append(detail.Items, CartLine{
			ProductID:  item.ProductID,
			CategoryID: item.Product.CategoryID,
			Slug:       item.Product.Slug,
			Name:       item.Product.Name,
			Image:      item.Product.MainImage(),
			Quantity:   item.Quantity,
			Quote:      *quote,
			LineTotal:  lineTotal,
		})
		subtotal = subtotal.Add(lineTotal.Decimal)
	}
	detail.Subtotal = models.NewMoneyFromDecimal(subtotal)
	return detail, nil
}

// AddItem 加购。同商品重复加购数量累加。
func (s *CartService) AddItem(ctx context.Context, userID, productID uint, quantity int) error {
	if quantity < 1 {
		return ErrCartItemInvalid
	}
	if err := s.ensureSellable(productID); err != nil {
		return err
	}
	cart, err := s.cartRepo.GetOrCreateByUser(userID)
	if err != nil {
		return err
	}
	return s.cartRepo.AddItemQuantity(cart.ID, productID, quantity)
}

// SetItemQuantity 设置条目数量（覆盖语义）
func (s *CartService) SetItemQuantity(ctx context.Context, userID, productID uint, quantity int) error {
	if quantity < 1 {
		return ErrCartItemInvalid
	}
	if err := s.ensureSellable(productID); err != nil {
		return err
	}
	cart, err := s.cartRepo.GetOrCreateByUser(userID)
	if err != nil {
		return err
	}
	return s.cartRepo.SetItemQuantity(cart.ID, productID, quantity)
}

// RemoveItem 移除条目（幂等）
func (s *CartService) RemoveItem(ctx context.Context, userID, productID uint) error {
	cart, err := s.cartRepo.GetOrCreateByUser(userID)
	if err != nil {
		return err
	}
	return s.cartRepo.DeleteItem(cart.ID, productID)
}

// Clear 清空购物车（幂等）
func (s *CartService) Clear(ctx context.Context, userID uint) error {
	cart, err := s.cartRepo.GetOrCreateByUser(userID)
	if err != nil {
		return err
	}
	return s.cartRepo.Clear(cart.ID)
}

// MergeGuestCart 登录时合并游客购物车。覆盖语义：游客侧数量直接
// 覆盖服务端同商品数量，重复提交结果不变。未知或已下架商品跳过
// 并记录，不中断合并。整体在一个事务内完成。
func (s *CartService) MergeGuestCart(ctx context.Context, userID uint, guestItems []GuestCartItem) error {
	if len(guestItems) == 0 {
		return nil
	}
	cart, err := s.cartRepo.GetOrCreateByUser(userID)
	if err != nil {
		return err
	}

	ids := make([]uint, 0, len(guestItems))
	for _, item := range guestItems {
		ids = append(ids, item.ProductID)
	}
	products, err := s.productRepo.ListByIDs(ids)
	if err != nil {
		return err
	}
	sellable := make(map[uint]bool, len(products))
	for i := range products {
		if products[i].IsActive {
			sellable[products[i].ID] = true
		}
	}

	return models.DB.Transaction(func(tx *gorm.DB) error {
		txRepo := s.cartRepo.WithTx(tx)
		for _, item := range guestItems {
			if item.Quantity < 1 {
				logger.Infow("cart_merge_item_skipped",
					"user_id", userID,
					"product_id", item.ProductID,
					"reason", "invalid_quantity",
				)
				continue
			}
			if !sellable[item.ProductID] {
				logger.Infow("cart_merge_item_skipped",
					"user_id", userID,
					"product_id", item.ProductID,
					"reason", "not_sellable",
				)
				continue
			}
			if err := txRepo.SetItemQuantity(cart.ID, item.ProductID, item.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
}

// ensureSellable 校验商品存在且上架
func (s *CartService) ensureSellable(productID uint) error {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	if !product.IsActive {
		return ErrProductNotAvailable
	}
	return nil
}
