package public

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/souq-next/internal/http/response"
	"github.com/souq-next/internal/service"
)

type cartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

type cartMergeRequest struct {
	Items []service.GuestCartItem `json:"items" binding:"required"`
}

// GetCart 获取购物车明细
func (h *Handler) GetCart(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		response.Unauthorized(c, "unauthorized")
		return
	}
	detail, err := h.CartService.Get(c.Request.Context(), userID)
	if err != nil {
		mappedHandlerError(c, err)
		return
	}
	response.Success(c, detail)
}

// AddCartItem 加购（重复加购数量累加）
func (h *Handler) AddCartItem(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		response.Unauthorized(c, "unauthorized")
		return
	}
	var req cartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request")
		return
	}
	if err := h.CartService.AddItem(c.Request.Context(), userID, req.ProductID, req.Quantity); err != nil {
		mappedHandlerError(c, err)
		return
	}
	response.Success(c, nil)
}

// SetCartItem 设置条目数量（覆盖语义）
func (h *Handler) SetCartItem(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		response.Unauthorized(c, "unauthorized")
		return
	}
	var req cartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request")
		return
	}
	if err := h.CartService.SetItemQuantity(c.Request.Context(), userID, req.ProductID, req.Quantity); err != nil {
		mappedHandlerError(c, err)
		return
	}
	response.Success(c, nil)
}

// RemoveCartItem 移除条目
func (h *Handler) RemoveCartItem(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		response.Unauthorized(c, "unauthorized")
		return
	}
	productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
	if err != nil || productID == 0 {
		response.BadRequest(c, "invalid product id")
		return
	}
	if err := h.CartService.RemoveItem(c.Request.Context(), userID, uint(productID)); err != nil {
		mappedHandlerError(c, err)
		return
	}
	response.Success(c, nil)
}

// ClearCart 清空购物车
func (h *Handler) ClearCart(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		response.Unauthorized(c, "unauthorized")
		return
	}
	if err := h.CartService.Clear(c.Request.Context(), userID); err != nil {
		mappedHandlerError(c, err)
		return
	}
	response.Success(c, nil)
}

// MergeCart 登录后合并游客购物车，返回合并后的明细
func (h *Handler) MergeCart(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		response.Unauthorized(c, "unauthorized")
		return
	}
	var req cartMergeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request")
		return
	}
	if err := h.CartService.MergeGuestCart(c.Request.Context(), userID, req.Items); err != nil {
		mappedHandlerError(c, err)
		return
	}
	detail, err := h.CartService.Get(c.Request.Context(), userID)
	if err != nil {
		mappedHandlerError(c, err)
		return
	}
	response.Success(c, detail)
}
