package models

import "time"

// Cart 购物车表。每个用户至多一行（user_id 唯一约束），
// 并发登录时依赖该约束做幂等创建，因此不使用软删除。
type Cart struct {
	ID        uint      `gorm:"primarykey" json:"id"`                // 主键
	UserID    uint      `gorm:"uniqueIndex;not null" json:"user_id"` // 用户ID
	CreatedAt time.Time `gorm:"index" json:"created_at"`             // 创建时间
	UpdatedAt time.Time `json:"updated_at"`                          // 更新时间

	Items []CartItem `gorm:"foreignKey:CartID" json:"items,omitempty"` // 购物车项
}

// TableName 指定表名
func (Cart) TableName() string {
	return "carts"
}

// CartItem 购物车项。(cart_id, product_id) 唯一，重复加购走数量累加，
// 依赖该约束做 upsert，因此同样不使用软删除。
type CartItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`                                         // 主键
	CartID    uint      `gorm:"not null;uniqueIndex:idx_cart_item_cart_product" json:"cart_id"`    // 购物车ID
	ProductID uint      `gorm:"not null;uniqueIndex:idx_cart_item_cart_product" json:"product_id"` // 商品ID
	Quantity  int       `gorm:"not null" json:"quantity"`                                     // 数量（≥1）
	CreatedAt time.Time `gorm:"index" json:"created_at"`                                      // 创建时间
	UpdatedAt time.Time `gorm:"index" json:"updated_at"`                                      // 更新时间

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"` // 关联商品
}

// TableName 指定表名
func (CartItem) TableName() string {
	return "cart_items"
}
