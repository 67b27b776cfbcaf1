package db

import (
	"context"

	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db/model"
)

type CatalogRepo struct {
	dbDao *DbDao
}

func NewCatalogRepo(dbDao *DbDao) *CatalogRepo {
	return &CatalogRepo{dbDao: dbDao}
}

// Create - 創建分類
func (s *CatalogRepo) CreateCategory(ctx context.Context, category *model.Category) (*model.Category, error) {
	if err := s.dbDao.WithContext(ctx).Create(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

// Read - 根據ID查詢分類
func (s *CatalogRepo) GetCategoryByID(ctx context.Context, id uint) (*model.Category, error) {
	var category model.Category
	err := s.dbDao.WithContext(ctx).First(&category, id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// Read - 查詢根分類
func (s *CatalogRepo) GetRootCategories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	err := s.dbDao.WithContext(ctx).Where("parent_id IS NULL").Find(&categories).Error
	return categories, err
}

// Read - 根據父分類查詢子分類
func (s *CatalogRepo) GetCategoriesByParent(ctx context.Context, parentID uint) ([]model.Category, error) {
	var categories []model.Category
	err := s.dbDao.WithContext(ctx).Where("parent_id = ?", parentID).Find(&categories).Error
	return categories, err
}

func (s *CatalogRepo) CountCategories(ctx context.Context) (int64, error) {
	var count int64
	err := s.dbDao.WithContext(ctx).Model(&model.Category{}).Count(&count).Error
	return count, err
}

// Create - 創建商品
func (s *CatalogRepo) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	if err := s.dbDao.WithContext(ctx).Create(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// Read - 根據ID查詢商品
func (s *CatalogRepo) GetProductByID(ctx context.Context, id uint) (*model.Product, error) {
	var product model.Product
	err := s.dbDao.WithContext(ctx).First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Read - 查詢所有商品
func (s *CatalogRepo) GetAllProducts(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := s.dbDao.WithContext(ctx).Find(&products).Error
	return products, err
}

// Read - 根據分類查詢商品
func (s *CatalogRepo) GetProductsByCategory(ctx context.Context, categoryID uint) ([]model.Product, error) {
	var products []model.Product
	err := s.dbDao.WithContext(ctx).Where("category_id = ?", categoryID).Find(&products).Error
	return products, err
}

// Update - 更新商品
func (s *CatalogRepo) UpdateProduct(ctx context.Context, product *model.Product) error {
	return s.dbDao.WithContext(ctx).Save(product).Error
}

func (s *CatalogRepo) CountProducts(ctx context.Context) (int64, error) {
	var count int64
	err := s.dbDao.WithContext(ctx).Model(&model.Product{}).Count(&count).Error
	return count, err
}
