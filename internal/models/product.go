package models

import (
	"time"

	"gorm.io/gorm"
)

// Product 商品表。价格与分类由商品管理维护，本引擎只读。
type Product struct {
	ID          uint           `gorm:"primarykey" json:"id"`                                      // 主键
	CategoryID  uint           `gorm:"not null;index" json:"category_id"`                         // 分类ID
	Slug        string         `gorm:"uniqueIndex;not null" json:"slug"`                          // 唯一标识
	Name        string         `gorm:"not null" json:"name"`                                      // 名称
	Description string         `gorm:"type:text" json:"description"`                              // 描述
	PriceAmount Money          `gorm:"type:decimal(20,0);not null;default:0" json:"price_amount"` // 原始单价
	Images      StringArray    `gorm:"type:json" json:"images"`                                   // 图片数组
	IsActive    bool           `gorm:"default:true;index" json:"is_active"`                       // 是否上架
	SortOrder   int            `gorm:"default:0;index" json:"sort_order"`                         // 排序权重
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                                   // 创建时间
	UpdatedAt   time.Time      `json:"updated_at"`                                                // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                                            // 软删除时间

	Category Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"` // 分类信息
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}

// MainImage 返回首图（订单快照用）
func (p *Product) MainImage() string {
	if p == nil || len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}
