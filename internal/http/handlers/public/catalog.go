package public

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/souq-next/internal/http/response"
	"github.com/souq-next/internal/repository"
)

// ListCategories 分类列表
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.CategoryService.List()
	if err != nil {
		mappedHandlerError(c, err)
		return
	}
	response.Success(c, gin.H{"categories": categories})
}

// ListProducts 上架商品列表（含报价）
func (h *Handler) ListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize > 100 {
		pageSize = 100
	}
	categoryID, _ := strconv.ParseUint(c.Query("category_id"), 10, 64)

	views, total, err := h.ProductService.List(c.Request.Context(), repository.ProductListFilter{
		CategoryID: uint(categoryID),
		Keyword:    c.Query("keyword"),
		Page:       page,
		PageSize:   pageSize,
	})
	if err != nil {
		mappedHandlerError(c, err)
		return
	}
	response.Success(c, gin.H{
		"products":  views,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// GetProduct 商品详情（含报价）
func (h *Handler) GetProduct(c *gin.Context) {
	view, err := h.ProductService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		mappedHandlerError(c, err)
		return
	}
	response.Success(c, view)
}
