package service

import (
	"github.com/souq-next/internal/models"
	"github.com/souq-next/internal/repository"
)

// CategoryService 分类查询
type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService 创建分类服务
func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// List 获取全部分类
func (s *CategoryService) List() ([]models.Category, error) {
	return s.categoryRepo.List()
}

// GetBySlug 根据别名获取分类
func (s *CategoryService) GetBySlug(slug string) (*models.Category, error) {
	category, err := s.categoryRepo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}
