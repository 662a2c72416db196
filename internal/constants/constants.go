package constants

// 订单状态常量
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusCompleted = "completed"
	OrderStatusCanceled  = "canceled"
)

// 适用范围常量（活动价与优惠券共用）
const (
	ScopeTypeGlobal   = "global"
	ScopeTypeCategory = "category"
	ScopeTypeProduct  = "product"
)

// 配送区域常量
const (
	DeliveryTierInside  = "inside"
	DeliveryTierOutside = "outside"
)

// 用户状态常量
const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)

// 队列常量
const (
	QueueDefault           = "default"
	TaskOrderTimeoutCancel = "order:timeout_cancel"
)

// 缓存默认配置常量
const (
	RedisPrefixDefault  = "sq"
	CacheKeyActiveSales = "sales:active"
)

// 设置键常量
const (
	SettingKeySiteConfig           = "site_config"
	SettingKeyDeliveryConfig       = "delivery_config"
	SettingFieldSiteCurrency       = "currency"
	SettingFieldDeliveryInsideFee  = "inside_fee"
	SettingFieldDeliveryOutsideFee = "outside_fee"
)

// 币种常量（站点默认币种，无辅币单位）
const (
	SiteCurrencyDefault = "IQD"
)
