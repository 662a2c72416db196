package repository

import (
	"github.com/souq-next/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartRepository 购物车数据访问接口。
// 写入路径依赖 carts.user_id 与 cart_items(cart_id, product_id)
// 的唯一约束做并发安全的 upsert。
type CartRepository interface {
	GetOrCreateByUser(userID uint) (*models.Cart, error)
	ListItems(cartID uint) ([]models.CartItem, error)
	AddItemQuantity(cartID, productID uint, quantity int) error
	SetItemQuantity(cartID, productID uint, quantity int) error
	DeleteItem(cartID, productID uint) error
	Clear(cartID uint) error
	WithTx(tx *gorm.DB) *GormCartRepository
}

// GormCartRepository GORM 实现
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓库
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx 绑定事务
func (r *GormCartRepository) WithTx(tx *gorm.DB) *GormCartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

// GetOrCreateByUser 获取用户购物车，不存在则创建。
// 并发下通过 user_id 唯一约束保证每个用户只有一辆车。
func (r *GormCartRepository) GetOrCreateByUser(userID uint) (*models.Cart, error) {
	cart := models.Cart{UserID: userID}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(&cart).Error
	if err != nil {
		return nil, err
	}

	// DoNothing 命中冲突时不回填主键，统一重新查询。
	var found models.Cart
	if err := r.db.Where("user_id = ?", userID).First(&found).Error; err != nil {
		return nil, err
	}
	return &found, nil
}

// ListItems 获取购物车条目（含商品与分类），按加入顺序返回
func (r *GormCartRepository) ListItems(cartID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	err := r.db.Preload("Product").Preload("Product.Category").
		Where("cart_id = ?", cartID).
		Order("id asc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// AddItemQuantity 添加条目；已存在时数量累加
func (r *GormCartRepository) AddItemQuantity(cartID, productID uint, quantity int) error {
	item := models.CartItem{
		CartID:    cartID,
		ProductID: productID,
		Quantity:  quantity,
	}
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("quantity + ?", quantity),
			"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(&item).Error
}

// SetItemQuantity 设置条目数量；已存在时覆盖
func (r *GormCartRepository) SetItemQuantity(cartID, productID uint, quantity int) error {
	item := models.CartItem{
		CartID:    cartID,
		ProductID: productID,
		Quantity:  quantity,
	}
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   quantity,
			"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(&item).Error
}

// DeleteItem 删除单个条目。条目不存在视为成功（幂等）。
func (r *GormCartRepository) DeleteItem(cartID, productID uint) error {
	result := r.db.Where("cart_id = ? AND product_id = ?", cartID, productID).
		Delete(&models.CartItem{})
	return result.Error
}

// Clear 清空购物车条目
func (r *GormCartRepository) Clear(cartID uint) error {
	return r.db.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error
}
