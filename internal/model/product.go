package model

type Product struct {
	BaseModel
	Name              string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Description       string `gorm:"type:text" json:"description"`
	Price             int64  `gorm:"default:0" json:"price" validate:"gte=0"`
	Stock             int    `gorm:"default:0" json:"stock" validate:"gte=0"`
	LowStockThreshold int    `gorm:"default:0" json:"low_stock_threshold" validate:"gte=0"`
}

// IsLowStock reports whether the product sits at or under its alert threshold.
func (p *Product) IsLowStock() bool {
	return p.Stock <= p.LowStockThreshold
}
