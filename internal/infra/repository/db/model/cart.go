package model

import "github.com/shopspring/decimal"

type Cart struct {
	BaseModel
	CartID uint       `gorm:"primaryKey" json:"cart_id"`
	UserID uint       `gorm:"uniqueIndex;not null" json:"user_id"`
	Items  []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
}

// CartItem captures the product price at add time.
type CartItem struct {
	BaseModel
	CartItemID uint            `gorm:"primaryKey" json:"cart_item_id"`
	CartID     uint            `gorm:"not null;index" json:"cart_id"`
	ProductID  uint            `gorm:"not null" json:"product_id"`
	Quantity   int             `gorm:"not null" json:"quantity"`
	Price      decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"price"`
}
