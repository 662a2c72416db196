package models

import (
	"time"

	"gorm.io/gorm"
)

// Sale 活动价规则。scope_type 取 global/category/product 三种封闭取值，
// global 时 scope_ref_id 为 0。
type Sale struct {
	ID         uint           `gorm:"primarykey" json:"id"`                          // 主键
	Name       string         `gorm:"not null" json:"name"`                          // 名称
	ScopeType  string         `gorm:"not null;index" json:"scope_type"`              // 适用范围（global/category/product）
	ScopeRefID uint           `gorm:"index;not null;default:0" json:"scope_ref_id"`  // 关联分类/商品ID
	Percent    int            `gorm:"not null" json:"percent"`                       // 折扣百分比（0-100）
	StartsAt   *time.Time     `gorm:"index" json:"starts_at"`                        // 生效时间
	EndsAt     *time.Time     `gorm:"index" json:"ends_at"`                          // 失效时间（空表示长期有效）
	IsActive   bool           `gorm:"not null;default:true;index" json:"is_active"`  // 是否启用
	CreatedAt  time.Time      `gorm:"index" json:"created_at"`                       // 创建时间
	UpdatedAt  time.Time      `gorm:"index" json:"updated_at"`                       // 更新时间
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`                                // 软删除时间
}

// TableName 指定表名
func (Sale) TableName() string {
	return "sales"
}
