package model

import "github.com/google/uuid"

type PurchaseStatus string

const (
	PurchaseCompleted PurchaseStatus = "completed"
	PurchasePending   PurchaseStatus = "pending"
	PurchaseCancelled PurchaseStatus = "cancelled"
)

// Purchase is an inbound stock order placed with a supplier.
type Purchase struct {
	BaseModel
	SupplierID  uuid.UUID      `gorm:"type:uuid;not null" json:"supplier_id" validate:"uuid_required"`
	Supplier    *Supplier      `json:"supplier,omitempty" validate:"-"`
	Items       []PurchaseItem `gorm:"constraint:OnDelete:CASCADE" json:"items" validate:"required,min=1,dive"`
	TotalAmount int64          `gorm:"not null" json:"total_amount"`
	Status      PurchaseStatus `gorm:"type:varchar(20);default:'pending'" json:"status" validate:"omitempty,oneof=completed pending cancelled"`
}

type PurchaseItem struct {
	BaseModel
	PurchaseID uuid.UUID `gorm:"type:uuid;index;not null" json:"purchase_id"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null" json:"product_id" validate:"uuid_required"`
	Quantity   int       `gorm:"not null" json:"quantity" validate:"required,gt=0"`
	UnitPrice  int64     `gorm:"not null" json:"unit_price" validate:"gte=0"`
	TotalPrice int64     `gorm:"not null" json:"total_price"`
}

func (p *Purchase) ItemsTotal() int64 {
	var total int64
	for _, item := range p.Items {
		total += item.TotalPrice
	}
	return total
}
