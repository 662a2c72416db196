package repository

import (
	"errors"
	"time"

	"github.com/souq-next/internal/models"

	"gorm.io/gorm"
)

// SaleRepository 活动价数据访问接口
type SaleRepository interface {
	GetByID(id uint) (*models.Sale, error)
	ListActive(now time.Time) ([]models.Sale, error)
	Create(sale *models.Sale) error
	Update(sale *models.Sale) error
	Delete(id uint) error
	List(filter SaleListFilter) ([]models.Sale, int64, error)
	WithTx(tx *gorm.DB) *GormSaleRepository
}

// SaleListFilter 活动价列表筛选
type SaleListFilter struct {
	ScopeType  string
	ScopeRefID uint
	IsActive   *bool
	Page       int
	PageSize   int
}

// GormSaleRepository GORM 实现
type GormSaleRepository struct {
	db *gorm.DB
}

// NewSaleRepository 创建活动价仓库
func NewSaleRepository(db *gorm.DB) *GormSaleRepository {
	return &GormSaleRepository{db: db}
}

// WithTx 绑定事务
func (r *GormSaleRepository) WithTx(tx *gorm.DB) *GormSaleRepository {
	if tx == nil {
		return r
	}
	return &GormSaleRepository{db: tx}
}

// GetByID 根据ID获取活动价
func (r *GormSaleRepository) GetByID(id uint) (*models.Sale, error) {
	var sale models.Sale
	if err := r.db.First(&sale, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sale, nil
}

// ListActive 获取当前生效的全部活动价。
// 生效定义：is_active 且已开始且（无失效时间或失效时间晚于 now）。
func (r *GormSaleRepository) ListActive(now time.Time) ([]models.Sale, error) {
	var sales []models.Sale
	query := r.db.Where("is_active = ?", true)
	query = query.Where("(starts_at IS NULL OR starts_at <= ?)", now)
	query = query.Where("(ends_at IS NULL OR ends_at > ?)", now)
	if err := query.Order("id asc").Find(&sales).Error; err != nil {
		return nil, err
	}
	return sales, nil
}

// Create 创建活动价
func (r *GormSaleRepository) Create(sale *models.Sale) error {
	return r.db.Create(sale).Error
}

// Update 更新活动价
func (r *GormSaleRepository) Update(sale *models.Sale) error {
	return r.db.Save(sale).Error
}

// Delete 删除活动价
func (r *GormSaleRepository) Delete(id uint) error {
	return r.db.Delete(&models.Sale{}, id).Error
}

// List 获取活动价列表
func (r *GormSaleRepository) List(filter SaleListFilter) ([]models.Sale, int64, error) {
	var sales []models.Sale
	query := r.db.Model(&models.Sale{})

	if filter.ScopeType != "" {
		query = query.Where("scope_type = ?", filter.ScopeType)
	}
	if filter.ScopeRefID != 0 {
		query = query.Where("scope_ref_id = ?", filter.ScopeRefID)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Order("id desc").Find(&sales).Error; err != nil {
		return nil, 0, err
	}
	return sales, total, nil
}
