package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/souq-next/internal/constants"
	"github.com/souq-next/internal/logger"
	"github.com/souq-next/internal/models"
	"github.com/souq-next/internal/repository"
	"gorm.io/gorm"
)

// CheckoutInput 下单输入
type CheckoutInput struct {
	UserID       uint
	DeliveryTier string
	CouponCode   string
	ClientIP     string
}

// OrderTimeoutScheduler 待确认订单的超时取消调度。
// 下单后投递延时任务，不可用时仅记录，不影响下单。
type OrderTimeoutScheduler interface {
	EnqueueOrderTimeoutCancel(orderID uint, delay time.Duration) error
}

// OrderService 订单组装与生命周期管理
type OrderService struct {
	orderRepo   repository.OrderRepository
	cartRepo    repository.CartRepository
	cartService *CartService
	coupon      *CouponService
	setting     *SettingService
	scheduler   OrderTimeoutScheduler

	pendingExpire time.Duration
}

// NewOrderService 创建订单服务。pendingExpireMinutes 为待确认订单
// 的存活时长，超过后自动取消。
func NewOrderService(
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	cartService *CartService,
	coupon *CouponService,
	setting *SettingService,
	scheduler OrderTimeoutScheduler,
	pendingExpireMinutes int,
) *OrderService {
	if pendingExpireMinutes <= 0 {
		pendingExpireMinutes = 30
	}
	return &OrderService{
		orderRepo:     orderRepo,
		cartRepo:      cartRepo,
		cartService:   cartService,
		coupon:        coupon,
		setting:       setting,
		scheduler:     scheduler,
		pendingExpire: time.Duration(pendingExpireMinutes) * time.Minute,
	}
}

// Checkout 从购物车生成订单。整个流程：报价快照 → 优惠券分摊 →
// 配送费 → 订单与条目落库并清空购物车（单事务）。金额自此冻结，
// 活动或商品后续变动不影响已生成订单。
func (s *OrderService) Checkout(ctx context.Context, input CheckoutInput) (*models.Order, error) {
	detail, err := s.cartService.Get(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if len(detail.Items) == 0 {
		return nil, ErrEmptyCart
	}

	deliveryFee, err := s.setting.DeliveryFee(input.DeliveryTier)
	if err != nil {
		return nil, err
	}

	// 优惠券分摊。lineDiscounts 与 detail.Items 一一对应。
	var appliedCoupon *models.Coupon
	couponTotal := models.NewMoneyFromInt(0)
	lineDiscounts := make([]LineDiscount, len(detail.Items))
	if input.CouponCode != "" {
		appliedCoupon, err = s.coupon.Validate(input.CouponCode)
		if err != nil {
			return nil, err
		}
		lines := make([]DiscountLine, 0, len(detail.Items))
		for _, item := range detail.Items {
			lines = append(lines, DiscountLine{
				ProductID:  item.ProductID,
				CategoryID: item.CategoryID,
				UnitPrice:  item.Quote.FinalPrice,
				Quantity:   item.Quantity,
			})
		}
		couponTotal, lineDiscounts, err = s.coupon.ApplyToLines(appliedCoupon, lines)
		if err != nil {
			return nil, err
		}
	}

	// 应付总额下限为 0
	subtotal := detail.Subtotal
	total := models.NewMoneyFromDecimal(
		subtotal.Decimal.Add(deliveryFee.Decimal).Sub(couponTotal.Decimal),
	)
	if total.Decimal.IsNegative() {
		total = models.NewMoneyFromInt(0)
	}

	now := time.Now()
	expiresAt := now.Add(s.pendingExpire)
	order := &models.Order{
		OrderNo:        generateOrderNo(),
		UserID:         input.UserID,
		Status:         constants.OrderStatusPending,
		Currency:       detail.Currency,
		SubtotalAmount: subtotal,
		DiscountAmount: couponTotal,
		DeliveryTier:   input.DeliveryTier,
		DeliveryFee:    deliveryFee,
		TotalAmount:    total,
		ClientIP:       input.ClientIP,
		ExpiresAt:      &expiresAt,
	}
	if appliedCoupon != nil {
		couponID := appliedCoupon.ID
		order.CouponID = &couponID
		order.CouponCode = appliedCoupon.Code
	}

	items := make([]models.OrderItem, 0, len(detail.Items))
	for i, line := range detail.Items {
		item := models.OrderItem{
			ProductID:     line.ProductID,
			CategoryID:    line.CategoryID,
			Name:          line.Name,
			Image:         line.Image,
			OriginalPrice: line.Quote.OriginalPrice,
			UnitPrice:     line.Quote.FinalPrice,
			Quantity:      line.Quantity,
			TotalPrice:    line.LineTotal,
			SaleID:        line.Quote.SaleID,
		}
		if i < len(lineDiscounts) {
			item.DiscountAmount = lineDiscounts[i].Amount
		}
		items = append(items, item)
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.WithTx(tx).Create(order, items); err != nil {
			return err
		}
		return s.cartRepo.WithTx(tx).Clear(detail.CartID)
	})
	if err != nil {
		return nil, err
	}
	order.Items = items

	logger.Infow("order_created",
		"order_no", order.OrderNo,
		"user_id", order.UserID,
		"total", order.TotalAmount.String(),
		"coupon_code", order.CouponCode,
	)

	if s.scheduler != nil {
		if err := s.scheduler.EnqueueOrderTimeoutCancel(order.ID, s.pendingExpire); err != nil {
			logger.Warnw("order_timeout_enqueue_failed",
				"order_no", order.OrderNo,
				"error", err,
			)
		}
	}
	return order, nil
}

// ListByUser 获取用户订单列表
func (s *OrderService) ListByUser(userID uint, filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return s.orderRepo.ListByUser(userID, filter)
}

// GetByID 获取属于用户的订单
func (s *OrderService) GetByID(id, userID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByIDAndUser(id, userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// GetByOrderNo 根据订单号获取属于用户的订单
func (s *OrderService) GetByOrderNo(orderNo string, userID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByOrderNoAndUser(orderNo, userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// Cancel 用户主动取消待确认订单
func (s *OrderService) Cancel(id, userID uint) error {
	order, err := s.orderRepo.GetByIDAndUser(id, userID)
	if err != nil {
		return err
	}
	if order == nil {
		return ErrOrderNotFound
	}
	return s.cancel(order, "user")
}

// Confirm 确认订单（后台/对账流程调用）
func (s *OrderService) Confirm(id uint) error {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return ErrOrderNotFound
	}
	if !CanTransition(order.Status, constants.OrderStatusConfirmed) {
		return ErrOrderStatusInvalid
	}
	now := time.Now()
	return s.orderRepo.UpdateStatus(order.ID, constants.OrderStatusConfirmed, map[string]interface{}{
		"confirmed_at": now,
	})
}

// CancelIfExpired 超时取消。worker 回调入口：订单已不在待确认态
// 或尚未到期时静默跳过。
func (s *OrderService) CancelIfExpired(id uint) error {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil || order.Status != constants.OrderStatusPending {
		return nil
	}
	if order.ExpiresAt != nil && order.ExpiresAt.After(time.Now()) {
		return nil
	}
	return s.cancel(order, "timeout")
}

func (s *OrderService) cancel(order *models.Order, reason string) error {
	if !CanTransition(order.Status, constants.OrderStatusCanceled) {
		return ErrOrderStatusInvalid
	}
	now := time.Now()
	err := s.orderRepo.UpdateStatus(order.ID, constants.OrderStatusCanceled, map[string]interface{}{
		"canceled_at": now,
	})
	if err != nil {
		return err
	}
	logger.Infow("order_canceled",
		"order_no", order.OrderNo,
		"user_id", order.UserID,
		"reason", reason,
	)
	return nil
}

// generateOrderNo 生成订单号：前缀 + 秒级时间戳 + 6位随机数
func generateOrderNo() string {
	return fmt.Sprintf("SQ%s%06d", time.Now().Format("20060102150405"), rand.Intn(1000000))
}
