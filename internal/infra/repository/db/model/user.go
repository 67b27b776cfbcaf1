package model

type User struct {
	BaseModel
	UserID       uint   `gorm:"primaryKey" json:"user_id"`
	Name         string `gorm:"not null;type:varchar(100)" json:"name"`
	Email        string `gorm:"unique;not null;type:varchar(100)" json:"email"`
	PasswordHash string `gorm:"not null;type:varchar(100)" json:"-"`
}

type Role struct {
	RoleID uint   `gorm:"primaryKey" json:"role_id"`
	Name   string `gorm:"unique;not null;type:varchar(50)" json:"name"`
}

// UserRole is the explicit join row between users and roles; roles are
// shared, so no cascade from roles side.
type UserRole struct {
	UserID uint `gorm:"primaryKey;constraint:OnDelete:CASCADE" json:"user_id"`
	RoleID uint `gorm:"primaryKey" json:"role_id"`
}

type Address struct {
	BaseModel
	AddressID  uint   `gorm:"primaryKey" json:"address_id"`
	UserID     uint   `gorm:"not null;index;constraint:OnDelete:CASCADE" json:"user_id"`
	Street     string `gorm:"not null;type:varchar(255)" json:"street"`
	City       string `gorm:"not null;type:varchar(100)" json:"city"`
	State      string `gorm:"not null;type:varchar(100)" json:"state"`
	PostalCode string `gorm:"not null;type:varchar(20)" json:"postal_code"`
	Country    string `gorm:"not null;type:varchar(100)" json:"country"`
	IsDefault  bool   `gorm:"not null;default:false" json:"is_default"`
}
