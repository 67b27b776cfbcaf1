package model

type Wishlist struct {
	BaseModel
	WishlistID uint           `gorm:"primaryKey" json:"wishlist_id"`
	UserID     uint           `gorm:"uniqueIndex;not null" json:"user_id"`
	Items      []WishlistItem `gorm:"foreignKey:WishlistID;constraint:OnDelete:CASCADE" json:"items"`
}

type WishlistItem struct {
	BaseModel
	WishlistItemID uint `gorm:"primaryKey" json:"wishlist_item_id"`
	WishlistID     uint `gorm:"not null;index" json:"wishlist_id"`
	ProductID      uint `gorm:"not null" json:"product_id"`
}
