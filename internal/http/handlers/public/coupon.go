package public

import (
	"github.com/gin-gonic/gin"
	"github.com/souq-next/internal/http/response"
	"github.com/souq-next/internal/models"
	"github.com/souq-next/internal/service"
)

type couponCheckItem struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

type couponCheckRequest struct {
	Code  string            `json:"code" binding:"required"`
	Items []couponCheckItem `json:"items"`
}

type couponCheckResponse struct {
	Code       string                 `json:"code"`
	ScopeType  string                 `json:"scope_type"`
	ScopeRefID uint                   `json:"scope_ref_id"`
	Percent    int                    `json:"percent"`
	Discount   *models.Money          `json:"discount,omitempty"`
	Lines      []service.LineDiscount `json:"lines,omitempty"`
}

// CheckCoupon 校验优惠码。可附带待购清单做适用性预检：
// 清单内无任何商品命中时返回范围不匹配错误。
// 只返回折扣信息，不暴露内部ID与启停状态。
func (h *Handler) CheckCoupon(c *gin.Context) {
	var req couponCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request")
		return
	}
	coupon, err := h.CouponService.Validate(req.Code)
	if err != nil {
		mappedHandlerError(c, err)
		return
	}

	resp := couponCheckResponse{
		Code:       coupon.Code,
		ScopeType:  coupon.ScopeType,
		ScopeRefID: coupon.ScopeRefID,
		Percent:    coupon.Percent,
	}

	if len(req.Items) > 0 {
		lines, err := h.buildDiscountLines(c, req.Items)
		if err != nil {
			mappedHandlerError(c, err)
			return
		}
		total, perLine, err := h.CouponService.ApplyToLines(coupon, lines)
		if err != nil {
			mappedHandlerError(c, err)
			return
		}
		resp.Discount = &total
		resp.Lines = perLine
	}

	response.Success(c, resp)
}

// buildDiscountLines 将待购清单转成按当前活动价报价的折扣行
func (h *Handler) buildDiscountLines(c *gin.Context, items []couponCheckItem) ([]service.DiscountLine, error) {
	ids := make([]uint, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}
	products, err := h.ProductRepo.ListByIDs(ids)
	if err != nil {
		return nil, err
	}
	sales, err := h.SaleService.ListActive(c.Request.Context())
	if err != nil {
		return nil, err
	}
	quotes, err := h.PricingService.QuoteAll(products, sales)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]*models.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	lines := make([]service.DiscountLine, 0, len(items))
	for _, item := range items {
		product, ok := byID[item.ProductID]
		if !ok || !product.IsActive {
			return nil, service.ErrProductNotFound
		}
		lines = append(lines, service.DiscountLine{
			ProductID:  product.ID,
			CategoryID: product.CategoryID,
			UnitPrice:  quotes[product.ID].FinalPrice,
			Quantity:   item.Quantity,
		})
	}
	return lines, nil
}
