package model

import "github.com/shopspring/decimal"

type Order struct {
	BaseModel
	OrderID uint `gorm:"primaryKey" json:"order_id"`
	UserID  uint `gorm:"not null;index" json:"user_id"`
	// optional reference to a saved address; nil when the buyer typed the
	// address in at checkout
	AddressID *uint `gorm:"index" json:"address_id,omitempty"`

	// shipping address snapshot, written once at placement and never updated
	// even if the referenced Address changes later
	ShippingFullName     string `gorm:"type:varchar(100)" json:"shipping_full_name"`
	ShippingAddressLine1 string `gorm:"type:varchar(255)" json:"shipping_address_line1"`
	ShippingAddressLine2 string `gorm:"type:varchar(255)" json:"shipping_address_line2"`
	ShippingCity         string `gorm:"type:varchar(100)" json:"shipping_city"`
	ShippingState        string `gorm:"type:varchar(100)" json:"shipping_state"`
	ShippingPostalCode   string `gorm:"type:varchar(20)" json:"shipping_postal_code"`
	ShippingCountry      string `gorm:"type:varchar(100)" json:"shipping_country"`
	ShippingPhone        string `gorm:"type:varchar(50)" json:"shipping_phone"`

	PaymentMethod string          `gorm:"type:varchar(50)" json:"payment_method"`
	TotalAmount   decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"total_amount"`
	Status        string          `gorm:"not null;type:varchar(20)" json:"status"`

	Items   []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Payment *Payment    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"payment,omitempty"`
}

// OrderItem freezes the product price at placement time; later product
// price changes do not touch it.
type OrderItem struct {
	BaseModel
	OrderItemID uint            `gorm:"primaryKey" json:"order_item_id"`
	OrderID     uint            `gorm:"not null;index" json:"order_id"`
	ProductID   uint            `gorm:"not null" json:"product_id"`
	Quantity    int             `gorm:"not null" json:"quantity"`
	Price       decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"price"`
}

type Payment struct {
	BaseModel
	PaymentID     uint            `gorm:"primaryKey" json:"payment_id"`
	OrderID       uint            `gorm:"uniqueIndex;not null" json:"order_id"`
	PaymentMethod string          `gorm:"type:varchar(50)" json:"payment_method"`
	TransactionID string          `gorm:"type:varchar(100)" json:"transaction_id,omitempty"`
	Amount        decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"amount"`
	Status        string          `gorm:"not null;type:varchar(20)" json:"status"`
}
