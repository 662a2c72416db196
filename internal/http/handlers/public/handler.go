// Package public 对外 HTTP 接口（店面与购物流程）
package public

import "github.com/souq-next/internal/provider"

// Handler 公共接口处理器
type Handler struct {
	*provider.Container
}

// NewHandler 创建处理器
func NewHandler(container *provider.Container) *Handler {
	return &Handler{Container: container}
}
