package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/RoyceAzure/lab/storefront/internal/apperr"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db/model"
)

type ICartService interface {
	GetCart(ctx context.Context, userID uint) (*model.Cart, error)
	AddToCart(ctx context.Context, userID, productID uint, quantity int) (*model.Cart, error)
	UpdateItemQuantity(ctx context.Context, userID, itemID uint, quantity int) (*model.Cart, error)
	RemoveItem(ctx context.Context, userID, itemID uint) (*model.Cart, error)
	ClearCart(ctx context.Context, userID uint) error
}

type CartService struct {
	dbDao db.UnifiedStore
}

func NewCartService(dbDao db.UnifiedStore) ICartService {
	return &CartService{dbDao: dbDao}
}

// GetCart 取得用戶購物車，第一次存取時建立
func (s *CartService) GetCart(ctx context.Context, userID uint) (*model.Cart, error) {
	return getOrCreateCart(ctx, s.dbDao, userID)
}

func (s *CartService) AddToCart(ctx context.Context, userID, productID uint, quantity int) (*model.Cart, error) {
	if quantity <= 0 {
		return nil, apperr.New(apperr.BadRequestCode, "quantity must be positive")
	}

	err := s.dbDao.ExecTx(ctx, func(store db.UnifiedStore) error {
		product, err := store.GetProductByID(ctx, productID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.New(apperr.NotFoundCode, "product not found")
			}
			return apperr.Wrap(apperr.InternalErrorCode, "failed to load product", err)
		}

		cart, err := getOrCreateCart(ctx, store, userID)
		if err != nil {
			return err
		}
		// 同商品已在購物車內就合併數量,否則以當前價格新增一筆
		existing, err := store.GetCartItemByProduct(ctx, cart.CartID, productID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.Wrap(apperr.InternalErrorCode, "failed to load cart item", err)
		}
		if existing != nil {
			existing.Quantity += quantity
			if err := store.UpdateCartItem(ctx, existing); err != nil {
				return apperr.Wrap(apperr.InternalErrorCode, "failed to update cart item", err)
			}
			return nil
		}

		item := &model.CartItem{
			CartID:    cart.CartID,
			ProductID: productID,
			Quantity:  quantity,
			Price:     product.Price,
		}
		if err := store.CreateCartItem(ctx, item); err != nil {
			return apperr.Wrap(apperr.InternalErrorCode, "failed to create cart item", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetCart(ctx, userID)
}

func (s *CartService) UpdateItemQuantity(ctx context.Context, userID, itemID uint, quantity int) (*model.Cart, error) {
	if quantity <= 0 {
		return nil, apperr.New(apperr.BadRequestCode, "quantity must be positive")
	}

	err := s.dbDao.ExecTx(ctx, func(store db.UnifiedStore) error {
		cart, err := getOrCreateCart(ctx, store, userID)
		if err != nil {
			return err
		}
		item, err := store.GetCartItem(ctx, cart.CartID, itemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.New(apperr.NotFoundCode, "cart item not found")
			}
			return apperr.Wrap(apperr.InternalErrorCode, "failed to load cart item", err)
		}
		item.Quantity = quantity
		if err := store.UpdateCartItem(ctx, item); err != nil {
			return apperr.Wrap(apperr.InternalErrorCode, "failed to update cart item", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetCart(ctx, userID)
}

func (s *CartService) RemoveItem(ctx context.Context, userID, itemID uint) (*model.Cart, error) {
	err := s.dbDao.ExecTx(ctx, func(store db.UnifiedStore) error {
		cart, err := getOrCreateCart(ctx, store, userID)
		if err != nil {
			return err
		}
		// 先確認該項目屬於這台購物車,避免刪除他人的項目
		if _, err := store.GetCartItem(ctx, cart.CartID, itemID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.New(apperr.NotFoundCode, "cart item not found")
			}
			return apperr.Wrap(apperr.InternalErrorCode, "failed to load cart item", err)
		}
		if err := store.DeleteCartItem(ctx, cart.CartID, itemID); err != nil {
			return apperr.Wrap(apperr.InternalErrorCode, "failed to delete cart item", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetCart(ctx, userID)
}

func (s *CartService) ClearCart(ctx context.Context, userID uint) error {
	cart, err := getOrCreateCart(ctx, s.dbDao, userID)
	if err != nil {
		return err
	}
	if err := s.dbDao.ClearCart(ctx, cart.CartID); err != nil {
		return apperr.Wrap(apperr.InternalErrorCode, "failed to clear cart", err)
	}
	return nil
}

// getOrCreateCart works with either the root store or a transaction-bound one.
func getOrCreateCart(ctx context.Context, store db.UnifiedStore, userID uint) (*model.Cart, error) {
	cart, err := store.GetCartByUserID(ctx, userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Wrap(apperr.InternalErrorCode, "failed to load cart", err)
	}

	if _, err := store.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFoundCode, "user not found")
		}
		return nil, apperr.Wrap(apperr.InternalErrorCode, "failed to load user", err)
	}
	created, err := store.CreateCart(ctx, &model.Cart{UserID: userID})
	if err != nil {
		return nil, apperr.Wrap(apperr.InternalErrorCode, "failed to create cart", err)
	}
	return created, nil
}

var _ ICartService = (*CartService)(nil)
