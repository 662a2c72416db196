package models

import (
	"time"

	"gorm.io/gorm"
)

// Coupon 优惠券。code 统一存储为大写，查询前先归一化。
// 可重复使用，直到被停用。
type Coupon struct {
	ID         uint           `gorm:"primarykey" json:"id"`                         // 主键
	Code       string         `gorm:"uniqueIndex;not null" json:"code"`             // 优惠码（大写存储）
	ScopeType  string         `gorm:"not null" json:"scope_type"`                   // 适用范围（global/category/product）
	ScopeRefID uint           `gorm:"index;not null;default:0" json:"scope_ref_id"` // 关联分类/商品ID
	Percent    int            `gorm:"not null" json:"percent"`                      // 折扣百分比（0-100）
	IsActive   bool           `gorm:"not null;default:true" json:"is_active"`       // 是否启用
	CreatedAt  time.Time      `gorm:"index" json:"created_at"`                      // 创建时间
	UpdatedAt  time.Time      `gorm:"index" json:"updated_at"`                      // 更新时间
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`                               // 软删除时间
}

// TableName 指定表名
func (Coupon) TableName() string {
	return "coupons"
}
