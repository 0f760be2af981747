package model

type Supplier struct {
	BaseModel
	Name    string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Email   string `gorm:"type:varchar(255)" json:"email" validate:"omitempty,email"`
	Phone   string `gorm:"type:varchar(20)" json:"phone"`
	Address string `gorm:"type:text" json:"address"`
}
