package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderItem 订单项表。名称、图片与价格均为下单时的字面快照，
// 后续商品或活动的任何改动都不回写这里。
type OrderItem struct {
	ID             uint           `gorm:"primarykey" json:"id"`                                         // 主键
	OrderID        uint           `gorm:"index;not null" json:"order_id"`                               // 订单ID
	ProductID      uint           `gorm:"index;not null" json:"product_id"`                             // 商品ID
	CategoryID     uint           `gorm:"index;not null" json:"category_id"`                            // 分类ID快照
	Name           string         `gorm:"not null" json:"name"`                                         // 商品名称快照
	Image          string         `gorm:"type:varchar(500)" json:"image"`                               // 商品图片快照
	OriginalPrice  Money          `gorm:"type:decimal(20,0);not null;default:0" json:"original_price"`  // 原始单价快照
	UnitPrice      Money          `gorm:"type:decimal(20,0);not null;default:0" json:"unit_price"`      // 生效单价快照（活动价后）
	Quantity       int            `gorm:"not null" json:"quantity"`                                     // 数量
	TotalPrice     Money          `gorm:"type:decimal(20,0);not null;default:0" json:"total_price"`     // 小计
	DiscountAmount Money          `gorm:"type:decimal(20,0);not null;default:0" json:"discount_amount"` // 优惠券分摊金额
	SaleID         *uint          `gorm:"index" json:"sale_id,omitempty"`                               // 命中的活动价ID
	CreatedAt      time.Time      `gorm:"index" json:"created_at"`                                      // 创建时间
	UpdatedAt      time.Time      `gorm:"index" json:"updated_at"`                                      // 更新时间
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`                                               // 软删除时间
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}
