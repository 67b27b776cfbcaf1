package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/RoyceAzure/lab/storefront/internal/apperr"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db/model"
)

type IWishlistService interface {
	GetWishlist(ctx context.Context, userID uint) (*model.Wishlist, error)
	AddToWishlist(ctx context.Context, userID, productID uint) (*model.Wishlist, error)
	RemoveItem(ctx context.Context, userID, itemID uint) (*model.Wishlist, error)
}

type WishlistService struct {
	dbDao db.UnifiedStore
}

func NewWishlistService(dbDao db.UnifiedStore) IWishlistService {
	return &WishlistService{dbDao: dbDao}
}

// GetWishlist 取得用戶願望清單，第一次存取時建立
func (s *WishlistService) GetWishlist(ctx context.Context, userID uint) (*model.Wishlist, error) {
	return getOrCreateWishlist(ctx, s.dbDao, userID)
}

// AddToWishlist 加入商品,同商品重複加入是 no-op
func (s *WishlistService) AddToWishlist(ctx context.Context, userID, productID uint) (*model.Wishlist, error) {
	err := s.dbDao.ExecTx(ctx, func(store db.UnifiedStore) error {
		if _, err := store.GetProductByID(ctx, productID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.New(apperr.NotFoundCode, "product not found")
			}
			return apperr.Wrap(apperr.InternalErrorCode, "failed to load product", err)
		}

		wishlist, err := getOrCreateWishlist(ctx, store, userID)
		if err != nil {
			return err
		}

		existing, err := store.GetWishlistItemByProduct(ctx, wishlist.WishlistID, productID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.Wrap(apperr.InternalErrorCode, "failed to load wishlist item", err)
		}
		if existing != nil {
			return nil
		}

		item := &model.WishlistItem{
			WishlistID: wishlist.WishlistID,
			ProductID:  productID,
		}
		if err := store.CreateWishlistItem(ctx, item); err != nil {
			return apperr.Wrap(apperr.InternalErrorCode, "failed to create wishlist item", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetWishlist(ctx, userID)
}

func (s *WishlistService) RemoveItem(ctx context.Context, userID, itemID uint) (*model.Wishlist, error) {
	err := s.dbDao.ExecTx(ctx, func(store db.UnifiedStore) error {
		wishlist, err := getOrCreateWishlist(ctx, store, userID)
		if err != nil {
			return err
		}
		if _, err := store.GetWishlistItem(ctx, wishlist.WishlistID, itemID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.New(apperr.NotFoundCode, "wishlist item not found")
			}
			return apperr.Wrap(apperr.InternalErrorCode, "failed to load wishlist item", err)
		}
		if err := store.DeleteWishlistItem(ctx, wishlist.WishlistID, itemID); err != nil {
			return apperr.Wrap(apperr.InternalErrorCode, "failed to delete wishlist item", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetWishlist(ctx, userID)
}

func getOrCreateWishlist(ctx context.Context, store db.UnifiedStore, userID uint) (*model.Wishlist, error) {
	wishlist, err := store.GetWishlistByUserID(ctx, userID)
	if err == nil {
		return wishlist, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Wrap(apperr.InternalErrorCode, "failed to load wishlist", err)
	}

	if _, err := store.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFoundCode, "user not found")
		}
		return nil, apperr.Wrap(apperr.InternalErrorCode, "failed to load user", err)
	}
	created, err := store.CreateWishlist(ctx, &model.Wishlist{UserID: userID})
	if err != nil {
		return nil, apperr.Wrap(apperr.InternalErrorCode, "failed to create wishlist", err)
	}
	return created, nil
}

var _ IWishlistService = (*WishlistService)(nil)
