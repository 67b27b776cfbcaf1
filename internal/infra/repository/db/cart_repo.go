package db

import (
	"context"

	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db/model"
)

type CartRepo struct {
	dbDao *DbDao
}

func NewCartRepo(dbDao *DbDao) *CartRepo {
	return &CartRepo{dbDao: dbDao}
}

// Create - 創建購物車
func (s *CartRepo) CreateCart(ctx context.Context, cart *model.Cart) (*model.Cart, error) {
	if err := s.dbDao.WithContext(ctx).Create(cart).Error; err != nil {
		return nil, err
	}
	return cart, nil
}

// Read - 根據用戶ID查詢購物車
func (s *CartRepo) GetCartByUserID(ctx context.Context, userID uint) (*model.Cart, error) {
	var cart model.Cart
	err := s.dbDao.WithContext(ctx).Preload("Items").Where("user_id = ?", userID).First(&cart).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// Read - 根據ID查詢購物車項目，限定在同一台購物車內
func (s *CartRepo) GetCartItem(ctx context.Context, cartID, itemID uint) (*model.CartItem, error) {
	var item model.CartItem
	err := s.dbDao.WithContext(ctx).
		Where("cart_id = ? AND cart_item_id = ?", cartID, itemID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Read - 根據商品查詢購物車項目
func (s *CartRepo) GetCartItemByProduct(ctx context.Context, cartID, productID uint) (*model.CartItem, error) {
	var item model.CartItem
	err := s.dbDao.WithContext(ctx).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Create - 新增購物車項目
func (s *CartRepo) CreateCartItem(ctx context.Context, item *model.CartItem) error {
	return s.dbDao.WithContext(ctx).Create(item).Error
}

// Update - 更新購物車項目
func (s *CartRepo) UpdateCartItem(ctx context.Context, item *model.CartItem) error {
	return s.dbDao.WithContext(ctx).Save(item).Error
}

// Delete - 刪除購物車項目
func (s *CartRepo) DeleteCartItem(ctx context.Context, cartID, itemID uint) error {
	return s.dbDao.WithContext(ctx).
		Where("cart_id = ? AND cart_item_id = ?", cartID, itemID).
		Delete(&model.CartItem{}).Error
}

// Delete - 清空購物車
func (s *CartRepo) ClearCart(ctx context.Context, cartID uint) error {
	return s.dbDao.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Delete(&model.CartItem{}).Error
}
