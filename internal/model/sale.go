package model

import "github.com/google/uuid"

// Payment methods. Both declared client conventions are accepted
// (cash/card/transfer and cash/mpesa/card), so the full union is valid.
const (
	PaymentCash     = "cash"
	PaymentCard     = "card"
	PaymentTransfer = "transfer"
	PaymentMpesa    = "mpesa"
)

type SaleStatus string

const (
	SaleCompleted SaleStatus = "completed"
	SalePending   SaleStatus = "pending"
	SaleCancelled SaleStatus = "cancelled"
)

type Sale struct {
	BaseModel
	CustomerID    uuid.UUID  `gorm:"type:uuid;not null" json:"customer_id" validate:"uuid_required"`
	Customer      *Customer  `json:"customer,omitempty" validate:"-"`
	Items         []SaleItem `gorm:"constraint:OnDelete:CASCADE" json:"items" validate:"required,min=1,dive"`
	TotalAmount   int64      `gorm:"not null" json:"total_amount"` // Must equal the sum of item totals at creation
	PaymentMethod string     `gorm:"type:varchar(20)" json:"payment_method" validate:"required,oneof=cash card transfer mpesa"`
	Status        SaleStatus `gorm:"type:varchar(20);default:'completed'" json:"status" validate:"omitempty,oneof=completed pending cancelled"`
}

type SaleItem struct {
	BaseModel
	SaleID     uuid.UUID `gorm:"type:uuid;index;not null" json:"sale_id"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null" json:"product_id" validate:"uuid_required"`
	Quantity   int       `gorm:"not null" json:"quantity" validate:"required,gt=0"`
	UnitPrice  int64     `gorm:"not null" json:"unit_price" validate:"gte=0"`
	TotalPrice int64     `gorm:"not null" json:"total_price"` // Snapshot unit_price * quantity
}

// ItemsTotal sums the line totals. TotalAmount must match this at creation;
// the system never re-checks it afterwards.
func (s *Sale) ItemsTotal() int64 {
	var total int64
	for _, item := range s.Items {
		total += item.TotalPrice
	}
	return total
}
