package public

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/souq-next/internal/http/response"
	"github.com/souq-next/internal/repository"
	"github.com/souq-next/internal/service"
)

type checkoutRequest struct {
	DeliveryTier string `json:"delivery_tier" binding:"required"`
	CouponCode   string `json:"coupon_code"`
}

// CreateOrder 从购物车下单
func (h *Handler) CreateOrder(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		response.Unauthorized(c, "unauthorized")
		return
	}
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request")
		return
	}
	order, err := h.OrderService.Checkout(c.Request.Context(), service.CheckoutInput{
		UserID:       userID,
		DeliveryTier: req.DeliveryTier,
		CouponCode:   req.CouponCode,
		ClientIP:     c.ClientIP(),
	})
	if err != nil {
		mappedHandlerError(c, err)
		return
	}
	response.Success(c, order)
}

// ListOrders 用户订单列表
func (h *Handler) ListOrders(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		response.Unauthorized(c, "unauthorized")
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize > 100 {
		pageSize = 100
	}
	orders, total, err := h.OrderService.ListByUser(userID, repository.OrderListFilter{
		Status:   c.Query("status"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		mappedHandlerError(c, err)
		return
	}
	response.Success(c, gin.H{
		"orders":    orders,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// GetOrder 订单详情
func (h *Handler) GetOrder(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		response.Unauthorized(c, "unauthorized")
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "invalid order id")
		return
	}
	order, err := h.OrderService.GetByID(uint(id), userID)
	if err != nil {
		mappedHandlerError(c, err)
		return
	}
	response.Success(c, order)
}

// GetOrderByOrderNo 按订单号查询订单
func (h *Handler) GetOrderByOrderNo(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		response.Unauthorized(c, "unauthorized")
		return
	}
	order, err := h.OrderService.GetByOrderNo(c.Param("order_no"), userID)
	if err != nil {
		mappedHandlerError(c, err)
		return
	}
	response.Success(c, order)
}

// CancelOrder 取消待确认订单
func (h *Handler) CancelOrder(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		response.Unauthorized(c, "unauthorized")
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "invalid order id")
		return
	}
	if err := h.OrderService.Cancel(uint(id), userID); err != nil {
		mappedHandlerError(c, err)
		return
	}
	response.Success(c, nil)
}
