package public

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/souq-next/internal/http/response"
	"github.com/souq-next/internal/logger"
	"github.com/souq-next/internal/service"
)

// errorRule 业务错误到响应的映射规则
type errorRule struct {
	err error
	fn  func(*gin.Context, string)
	msg string
}

var errorRules = []errorRule{
	{service.ErrInvalidInput, response.BadRequest, "invalid request"},
	{service.ErrCartItemInvalid, response.BadRequest, "invalid cart item"},
	{service.ErrDeliveryTierInvalid, response.BadRequest, "invalid delivery tier"},
	{service.ErrEmptyCart, response.BadRequest, "cart is empty"},
	{service.ErrProductNotFound, response.NotFound, "product not found"},
	{service.ErrProductNotAvailable, response.NotFound, "product not available"},
	{service.ErrCategoryNotFound, response.NotFound, "category not found"},
	{service.ErrCouponNotFound, response.NotFound, "coupon not found"},
	{service.ErrCouponScopeMismatch, response.BadRequest, "coupon does not apply to these items"},
	{service.ErrOrderNotFound, response.NotFound, "order not found"},
	{service.ErrOrderStatusInvalid, response.Conflict, "order status does not allow this operation"},
}

// mappedHandlerError 按规则映射业务错误；未知错误记日志并归为 500
func mappedHandlerError(c *gin.Context, err error) {
	for _, rule := range errorRules {
		if errors.Is(err, rule.err) {
			rule.fn(c, rule.msg)
			return
		}
	}
	logger.Errorw("handler_unexpected_error",
		"path", c.FullPath(),
		"error", err,
	)
	response.InternalError(c, "internal error")
}
