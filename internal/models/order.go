package models

import (
	"time"

	"gorm.io/gorm"
)

// Order 订单表。金额字段在下单时冻结，此后仅状态与时间戳可变。
type Order struct {
	ID             uint           `gorm:"primarykey" json:"id"`                                         // 主键
	OrderNo        string         `gorm:"uniqueIndex;not null" json:"order_no"`                         // 订单编号
	UserID         uint           `gorm:"index;not null" json:"user_id"`                                // 用户ID
	Status         string         `gorm:"index;not null" json:"status"`                                 // 订单状态
	Currency       string         `gorm:"not null" json:"currency"`                                     // 币种
	SubtotalAmount Money          `gorm:"type:decimal(20,0);not null;default:0" json:"subtotal_amount"` // 商品小计（活动价后）
	DiscountAmount Money          `gorm:"type:decimal(20,0);not null;default:0" json:"discount_amount"` // 优惠券优惠金额
	DeliveryTier   string         `gorm:"type:varchar(20);not null" json:"delivery_tier"`               // 配送区域（inside/outside）
	DeliveryFee    Money          `gorm:"type:decimal(20,0);not null;default:0" json:"delivery_fee"`    // 配送费
	TotalAmount    Money          `gorm:"type:decimal(20,0);not null;default:0" json:"total_amount"`    // 应付总额
	CouponID       *uint          `gorm:"index" json:"coupon_id,omitempty"`                             // 优惠券ID
	CouponCode     string         `gorm:"type:varchar(64)" json:"coupon_code,omitempty"`                // 优惠码快照
	ClientIP       string         `gorm:"type:varchar(64)" json:"client_ip,omitempty"`                  // 下单客户端IP
	ExpiresAt      *time.Time     `gorm:"index" json:"expires_at"`                                      // 待确认过期时间
	ConfirmedAt    *time.Time     `gorm:"index" json:"confirmed_at"`                                    // 确认时间
	CanceledAt     *time.Time     `gorm:"index" json:"canceled_at"`                                     // 取消时间
	CreatedAt      time.Time      `gorm:"index" json:"created_at"`                                      // 创建时间
	UpdatedAt      time.Time      `gorm:"index" json:"updated_at"`                                      // 更新时间
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`                                               // 软删除时间

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"` // 订单项
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
