package model

import "github.com/shopspring/decimal"

type Category struct {
	BaseModel
	CategoryID  uint   `gorm:"primaryKey" json:"category_id"`
	Name        string `gorm:"not null;type:varchar(100)" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	// root categories have no parent
	ParentID *uint `gorm:"index" json:"parent_id,omitempty"`
}

type Product struct {
	BaseModel
	ProductID   uint            `gorm:"primaryKey" json:"product_id"`
	Name        string          `gorm:"not null;type:varchar(100)" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"price"`
	Stock       int             `gorm:"not null;type:int" json:"stock"`
	ImageURL    string          `gorm:"type:varchar(255)" json:"image_url"`
	CategoryID  uint            `gorm:"not null;index" json:"category_id"`
}
