package public

import (
	"github.com/gin-gonic/gin"
	"github.com/souq-next/internal/http/response"
	"github.com/souq-next/internal/service"
)

type siteConfigResponse struct {
	Currency string                  `json:"currency"`
	Delivery service.DeliverySetting `json:"delivery"`
}

// GetSiteConfig 站点公开配置（币种与配送费表）
func (h *Handler) GetSiteConfig(c *gin.Context) {
	currency, err := h.SettingService.GetSiteCurrency()
	if err != nil {
		mappedHandlerError(c, err)
		return
	}
	delivery, err := h.SettingService.GetDeliverySetting()
	if err != nil {
		mappedHandlerError(c, err)
		return
	}
	response.Success(c, siteConfigResponse{
		Currency: currency,
		Delivery: *delivery,
	})
}
