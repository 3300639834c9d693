package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order is an immutable snapshot taken at checkout. Only Status changes
// afterwards; items and total are frozen at creation.
type Order struct {
	gorm.Model
	Number string `gorm:"uniqueIndex" json:"number"`

	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	Name          string `json:"name"`
	Location      string `json:"location"`
	PaymentMethod string `json:"paymentMethod"`
	TransactionID string `json:"transactionId"` // opaque, stored as received

	Status      OrderStatus     `gorm:"type:varchar(16);index" json:"status"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2)" json:"totalAmount"`

	Items []OrderItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
