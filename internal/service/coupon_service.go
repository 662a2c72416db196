package service

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/souq-next/internal/constants"
	"github.com/souq-next/internal/models"
	"github.com/souq-next/internal/repository"
)

// DiscountLine 参与优惠券计算的一行。UnitPrice 为活动价后的生效单价，
// 优惠券在其上叠乘，不回到原价。
type DiscountLine struct {
	ProductID  uint
	CategoryID uint
	UnitPrice  models.Money
	Quantity   int
}

// LineDiscount 单行的优惠券分摊结果
type LineDiscount struct {
	ProductID uint         `json:"product_id"`
	Eligible  bool         `json:"eligible"`
	Amount    models.Money `json:"amount"`
}

// CouponService 优惠券校验与折扣账本
type CouponService struct {
	couponRepo repository.CouponRepository
}

// NewCouponService 创建优惠券服务
func NewCouponService(couponRepo repository.CouponRepository) *CouponService {
	return &CouponService{couponRepo: couponRepo}
}

// NormalizeCouponCode 归一化优惠码：去空白并转大写
func NormalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Validate 校验优惠码并返回优惠券。
// 不存在与已停用对外同一个错误，不泄露码是否真实存在。
func (s *CouponService) Validate(code string) (*models.Coupon, error) {
	normalized := NormalizeCouponCode(code)
	if normalized == "" {
		return nil, ErrInvalidInput
	}
	coupon, err := s.couponRepo.GetByCode(normalized)
	if err != nil {
		return nil, err
	}
	if coupon == nil || !coupon.IsActive {
		return nil, ErrCouponNotFound
	}
	if err := validateCouponScope(coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

// ApplyToLines 将优惠券分摊到各行。
// 每行折扣 = round(生效单价 × 数量 × 百分比 / 100)，逐行取整后求和，
// 保证账本合计与各行之和严格一致。范围外的行不参与。
// 没有任何行命中时返回 ErrCouponScopeMismatch。
func (s *CouponService) ApplyToLines(coupon *models.Coupon, lines []DiscountLine) (models.Money, []LineDiscount, error) {
	zero := models.NewMoneyFromInt(0)
	if coupon == nil {
		return zero, nil, ErrCouponNotFound
	}
	if err := validateCouponScope(coupon); err != nil {
		return zero, nil, err
	}

	results := make([]LineDiscount, 0, len(lines))
	total := decimal.Zero
	anyEligible := false
	for _, line := range lines {
		result := LineDiscount{ProductID: line.ProductID, Amount: zero}
		if couponCoversLine(coupon, line) && line.Quantity > 0 {
			anyEligible = true
			result.Eligible = true
			result.Amount = lineCouponDiscount(line, coupon.Percent)
			total = total.Add(result.Amount.Decimal)
		}
		results = append(results, result)
	}
	if !anyEligible {
		return zero, nil, ErrCouponScopeMismatch
	}
	return models.NewMoneyFromDecimal(total), results, nil
}

// validateCouponScope 校验范围取值，未知取值直接报错
func validateCouponScope(coupon *models.Coupon) error {
	switch coupon.ScopeType {
	case constants.ScopeTypeGlobal, constants.ScopeTypeCategory, constants.ScopeTypeProduct:
		return nil
	default:
		return ErrCouponScopeInvalid
	}
}

func couponCoversLine(coupon *models.Coupon, line DiscountLine) bool {
	switch coupon.ScopeType {
	case constants.ScopeTypeGlobal:
		return true
	case constants.ScopeTypeCategory:
		return coupon.ScopeRefID == line.CategoryID
	case constants.ScopeTypeProduct:
		return coupon.ScopeRefID == line.ProductID
	default:
		return false
	}
}

// lineCouponDiscount 单行折扣金额，先算整行再取整
func lineCouponDiscount(line DiscountLine, percent int) models.Money {
	if percent <= 0 {
		return models.NewMoneyFromInt(0)
	}
	if percent > 100 {
		percent = 100
	}
	lineTotal := line.UnitPrice.Decimal.Mul(decimal.NewFromInt(int64(line.Quantity)))
	raw := lineTotal.Mul(decimal.NewFromInt(int64(percent))).Div(decimal.NewFromInt(100))
	return models.NewMoneyFromDecimal(raw)
}
