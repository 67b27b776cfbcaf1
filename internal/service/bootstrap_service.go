package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db/model"
)

// SeedData 在啟動時建立角色與範例商品目錄。角色每次啟動都會補齊,
// 商品目錄只在完全空白時建立一次。
func SeedData(ctx context.Context, store db.UnifiedStore) error {
	return store.ExecTx(ctx, func(tx db.UnifiedStore) error {
		if err := seedRoles(ctx, tx); err != nil {
			return err
		}
		return seedCatalog(ctx, tx)
	})
}

func seedRoles(ctx context.Context, store db.UnifiedStore) error {
	for _, name := range []string{constants.RoleUser, constants.RoleAdmin} {
		_, err := store.GetRoleByName(ctx, name)
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := store.CreateRole(ctx, &model.Role{Name: name}); err != nil {
			return err
		}
		log.Info().Str("role", name).Msg("seeded role")
	}
	return nil
}

func seedCatalog(ctx context.Context, store db.UnifiedStore) error {
	count, err := store.CountCategories(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	electronics, err := store.CreateCategory(ctx, &model.Category{
		Name:        "Electronics",
		Description: "Gadgets and devices",
	})
	if err != nil {
		return err
	}
	fashion, err := store.CreateCategory(ctx, &model.Category{
		Name:        "Fashion",
		Description: "Clothing and accessories",
	})
	if err != nil {
		return err
	}

	products := []model.Product{
		{
			Name:        "Premium Smartphone",
			Description: "Latest model with high-end features",
			Price:       decimal.NewFromFloat(999.99),
			Stock:       50,
			ImageURL:    "https://placehold.co/300x300?text=Smartphone",
			CategoryID:  electronics.CategoryID,
		},
		{
			Name:        "Ultra Slim Laptop",
			Description: "Lightweight and powerful",
			Price:       decimal.NewFromFloat(1299.00),
			Stock:       30,
			ImageURL:    "https://placehold.co/300x300?text=Laptop",
			CategoryID:  electronics.CategoryID,
		},
		{
			Name:        "Classic White T-Shirt",
			Description: "Comfortable cotton t-shirt",
			Price:       decimal.NewFromFloat(29.99),
			Stock:       100,
			ImageURL:    "https://placehold.co/300x300?text=T-Shirt",
			CategoryID:  fashion.CategoryID,
		},
	}
	for i := range products {
		if _, err := store.CreateProduct(ctx, &products[i]); err != nil {
			return err
		}
	}

	log.Info().Int("categories", 2).Int("products", len(products)).Msg("seeded sample catalog")
	return nil
}
