package service

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/RoyceAzure/lab/storefront/internal/apperr"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db/model"
)

type ICatalogService interface {
	GetRootCategories(ctx context.Context) ([]model.Category, error)
	GetCategory(ctx context.Context, id uint) (*model.Category, []model.Category, error)
	GetAllProducts(ctx context.Context) ([]model.Product, error)
	GetProduct(ctx context.Context, id uint) (*model.Product, error)
	GetProductsByCategory(ctx context.Context, categoryID uint) ([]model.Product, error)
	CreateCategory(ctx context.Context, category *model.Category) (*model.Category, error)
	CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error)
	UpdateProduct(ctx context.Context, product *model.Product) (*model.Product, error)
}

type CatalogService struct {
	dbDao db.UnifiedStore
}

func NewCatalogService(dbDao db.UnifiedStore) ICatalogService {
	return &CatalogService{dbDao: dbDao}
}

func (s *CatalogService) GetRootCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := s.dbDao.GetRootCategories(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.InternalErrorCode, "failed to load categories", err)
	}
	return categories, nil
}

// GetCategory 返回分類本身與其直接子分類
func (s *CatalogService) GetCategory(ctx context.Context, id uint) (*model.Category, []model.Category, error) {
	category, err := s.dbDao.GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperr.New(apperr.NotFoundCode, "category not found")
		}
		return nil, nil, apperr.Wrap(apperr.InternalErrorCode, "failed to load category", err)
	}
	children, err := s.dbDao.GetCategoriesByParent(ctx, id)
	if err != nil {
		return nil, nil, apperr.Wrap(apperr.InternalErrorCode, "failed to load child categories", err)
	}
	return category, children, nil
}

func (s *CatalogService) GetAllProducts(ctx context.Context) ([]model.Product, error) {
	products, err := s.dbDao.GetAllProducts(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.InternalErrorCode, "failed to load products", err)
	}
	return products, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id uint) (*model.Product, error) {
	product, err := s.dbDao.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFoundCode, "product not found")
		}
		return nil, apperr.Wrap(apperr.InternalErrorCode, "failed to load product", err)
	}
	return product, nil
}

func (s *CatalogService) GetProductsByCategory(ctx context.Context, categoryID uint) ([]model.Product, error) {
	if _, err := s.dbDao.GetCategoryByID(ctx, categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFoundCode, "category not found")
		}
		return nil, apperr.Wrap(apperr.InternalErrorCode, "failed to load category", err)
	}
	products, err := s.dbDao.GetProductsByCategory(ctx, categoryID)
	if err != nil {
		return nil, apperr.Wrap(apperr.InternalErrorCode, "failed to load products", err)
	}
	return products, nil
}

func (s *CatalogService) CreateCategory(ctx context.Context, category *model.Category) (*model.Category, error) {
	if category.Name == "" {
		return nil, apperr.New(apperr.BadRequestCode, "category name is required")
	}
	if category.ParentID != nil {
		if _, err := s.dbDao.GetCategoryByID(ctx, *category.ParentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.New(apperr.NotFoundCode, "parent category not found")
			}
			return nil, apperr.Wrap(apperr.InternalErrorCode, "failed to load parent category", err)
		}
	}
	created, err := s.dbDao.CreateCategory(ctx, category)
	if err != nil {
		return nil, apperr.Wrap(apperr.InternalErrorCode, "failed to create category", err)
	}
	return created, nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	if err := validateProduct(product); err != nil {
		return nil, err
	}
	if _, err := s.dbDao.GetCategoryByID(ctx, product.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFoundCode, "category not found")
		}
		return nil, apperr.Wrap(apperr.InternalErrorCode, "failed to load category", err)
	}
	created, err := s.dbDao.CreateProduct(ctx, product)
	if err != nil {
		return nil, apperr.Wrap(apperr.InternalErrorCode, "failed to create product", err)
	}
	return created, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	if err := validateProduct(product); err != nil {
		return nil, err
	}
	existing, err := s.dbDao.GetProductByID(ctx, product.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFoundCode, "product not found")
		}
		return nil, apperr.Wrap(apperr.InternalErrorCode, "failed to load product", err)
	}

	existing.Name = product.Name
	existing.Description = product.Description
	existing.Price = product.Price
	existing.Stock = product.Stock
	existing.ImageURL = product.ImageURL
	existing.CategoryID = product.CategoryID
	if err := s.dbDao.UpdateProduct(ctx, existing); err != nil {
		return nil, apperr.Wrap(apperr.InternalErrorCode, "failed to update product", err)
	}
	return existing, nil
}

func validateProduct(product *model.Product) error {
	if product.Name == "" {
		return apperr.New(apperr.BadRequestCode, "product name is required")
	}
	if product.Price.LessThan(decimal.Zero) {
		return apperr.New(apperr.BadRequestCode, "product price must not be negative")
	}
	if product.Stock < 0 {
		return apperr.New(apperr.BadRequestCode, "product stock must not be negative")
	}
	return nil
}

var _ ICatalogService = (*CatalogService)(nil)
