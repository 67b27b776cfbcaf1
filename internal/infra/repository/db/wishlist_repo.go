package db

import (
	"context"

	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db/model"
)

type WishlistRepo struct {
	dbDao *DbDao
}

func NewWishlistRepo(dbDao *DbDao) *WishlistRepo {
	return &WishlistRepo{dbDao: dbDao}
}

// Create - 創建願望清單
func (s *WishlistRepo) CreateWishlist(ctx context.Context, wishlist *model.Wishlist) (*model.Wishlist, error) {
	if err := s.dbDao.WithContext(ctx).Create(wishlist).Error; err != nil {
		return nil, err
	}
	return wishlist, nil
}

// Read - 根據用戶ID查詢願望清單
func (s *WishlistRepo) GetWishlistByUserID(ctx context.Context, userID uint) (*model.Wishlist, error) {
	var wishlist model.Wishlist
	err := s.dbDao.WithContext(ctx).Preload("Items").Where("user_id = ?", userID).First(&wishlist).Error
	if err != nil {
		return nil, err
	}
	return &wishlist, nil
}

// Read - 根據ID查詢願望清單項目
func (s *WishlistRepo) GetWishlistItem(ctx context.Context, wishlistID, itemID uint) (*model.WishlistItem, error) {
	var item model.WishlistItem
	err := s.dbDao.WithContext(ctx).
		Where("wishlist_id = ? AND wishlist_item_id = ?", wishlistID, itemID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Read - 根據商品查詢願望清單項目
func (s *WishlistRepo) GetWishlistItemByProduct(ctx context.Context, wishlistID, productID uint) (*model.WishlistItem, error) {
	var item model.WishlistItem
	err := s.dbDao.WithContext(ctx).
		Where("wishlist_id = ? AND product_id = ?", wishlistID, productID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Create - 新增願望清單項目
func (s *WishlistRepo) CreateWishlistItem(ctx context.Context, item *model.WishlistItem) error {
	return s.dbDao.WithContext(ctx).Create(item).Error
}

// Delete - 刪除願望清單項目
func (s *WishlistRepo) DeleteWishlistItem(ctx context.Context, wishlistID, itemID uint) error {
	return s.dbDao.WithContext(ctx).
		Where("wishlist_id = ? AND wishlist_item_id = ?", wishlistID, itemID).
		Delete(&model.WishlistItem{}).Error
}
