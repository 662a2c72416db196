package service

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/souq-next/internal/constants"
	"github.com/souq-next/internal/models"
)

// PriceQuote 商品报价。FinalPrice 为活动价后的生效单价，
// 未命中活动时等于 OriginalPrice。
type PriceQuote struct {
	ProductID       uint         `json:"product_id"`
	OriginalPrice   models.Money `json:"original_price"`
	FinalPrice      models.Money `json:"final_price"`
	IsOnSale        bool         `json:"is_on_sale"`
	DiscountPercent int          `json:"discount_percent"`
	SaleID          *uint        `json:"sale_id,omitempty"`
	SaleEndsAt      *time.Time   `json:"sale_ends_at,omitempty"`
}

// PricingService 活动价解析与报价计算。
// 纯计算：活动列表由调用方取好传入，同一份输入必得同一份输出。
type PricingService struct{}

// NewPricingService 创建报价服务
func NewPricingService() *PricingService {
	return &PricingService{}
}

// ResolveSale 从候选活动中解析出适用于该商品的唯一活动。
// 同一商品命中多条时按规则决出：范围特异性（商品>分类>全局）
// 优先，其次折扣力度大者，再次生效时间早者，最后ID小者。
// 无命中返回 nil。
func (s *PricingService) ResolveSale(product *models.Product, sales []models.Sale) (*models.Sale, error) {
	if product == nil {
		return nil, ErrProductNotFound
	}
	var winner *models.Sale
	for i := range sales {
		sale := &sales[i]
		matched, err := saleMatchesProduct(sale, product)
		if err != nil {
			return nil, err
		}
		if !matched {
			continue
		}
		if winner == nil || saleBeats(sale, winner) {
			winner = sale
		}
	}
	return winner, nil
}

// Quote 计算商品报价。折扣单价为取整后的整数金额。
func (s *PricingService) Quote(product *models.Product, sales []models.Sale) (*PriceQuote, error) {
	if product == nil {
		return nil, ErrProductNotFound
	}
	quote := &PriceQuote{
		ProductID:     product.ID,
		OriginalPrice: product.PriceAmount,
		FinalPrice:    product.PriceAmount,
	}
	sale, err := s.ResolveSale(product, sales)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return quote, nil
	}

	quote.IsOnSale = true
	quote.DiscountPercent = sale.Percent
	saleID := sale.ID
	quote.SaleID = &saleID
	quote.SaleEndsAt = sale.EndsAt
	quote.FinalPrice = applyPercentOff(product.PriceAmount, sale.Percent)
	return quote, nil
}

// QuoteAll 批量报价，key 为商品ID
func (s *PricingService) QuoteAll(products []models.Product, sales []models.Sale) (map[uint]*PriceQuote, error) {
	quotes := make(map[uint]*PriceQuote, len(products))
	for i := range products {
		quote, err := s.Quote(&products[i], sales)
		if err != nil {
			return nil, err
		}
		quotes[products[i].ID] = quote
	}
	return quotes, nil
}

// saleMatchesProduct 判定活动范围是否覆盖商品。
// 范围取值封闭，未知取值直接报错而不是静默忽略。
func saleMatchesProduct(sale *models.Sale, product *models.Product) (bool, error) {
	switch sale.ScopeType {
	case constants.ScopeTypeGlobal:
		return true, nil
	case constants.ScopeTypeCategory:
		return sale.ScopeRefID == product.CategoryID, nil
	case constants.ScopeTypeProduct:
		return sale.ScopeRefID == product.ID, nil
	default:
		return false, ErrSaleScopeInvalid
	}
}

// scopeRank 范围特异性权重，商品级最高
func scopeRank(scopeType string) int {
	switch scopeType {
	case constants.ScopeTypeProduct:
		return 3
	case constants.ScopeTypeCategory:
		return 2
	case constants.ScopeTypeGlobal:
		return 1
	default:
		return 0
	}
}

// saleBeats 判定 a 是否优先于 b
func saleBeats(a, b *models.Sale) bool {
	if ra, rb := scopeRank(a.ScopeType), scopeRank(b.ScopeType); ra != rb {
		return ra > rb
	}
	if a.Percent != b.Percent {
		return a.Percent > b.Percent
	}
	if ta, tb := saleStartTime(a), saleStartTime(b); !ta.Equal(tb) {
		return ta.Before(tb)
	}
	return a.ID < b.ID
}

func saleStartTime(sale *models.Sale) time.Time {
	if sale.StartsAt != nil {
		return *sale.StartsAt
	}
	return time.Time{}
}

// applyPercentOff 按百分比折扣计算金额，结果取整
func applyPercentOff(amount models.Money, percent int) models.Money {
	if percent <= 0 {
		return amount
	}
	if percent >= 100 {
		return models.NewMoneyFromInt(0)
	}
	factor := decimal.NewFromInt(int64(100 - percent)).Div(decimal.NewFromInt(100))
	return models.NewMoneyFromDecimal(amount.Decimal.Mul(factor))
}
