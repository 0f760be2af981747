package repository

import (
	"time"

	"go-retail-pos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SaleRepository interface {
	Create(tx *gorm.DB, sale *model.Sale) error
	FindAll() ([]model.Sale, error)
	FindByID(id uuid.UUID) (*model.Sale, error)
	FindSince(since time.Time) ([]model.Sale, error)
	Update(sale *model.Sale) error
	Delete(id uuid.UUID) error
}

type saleRepo struct {
	db *gorm.DB
}

func NewSaleRepo(db *gorm.DB) SaleRepository {
	return &saleRepo{db}
}

// Create takes *gorm.DB (tx) so the sale and its stock movements commit together
func (r *saleRepo) Create(tx *gorm.DB, sale *model.Sale) error {
	return tx.Create(sale).Error
}

func (r *saleRepo) FindAll() ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.Preload("Items").Preload("Customer").Order("created_at DESC").Find(&sales).Error
	return sales, err
}

func (r *saleRepo) FindByID(id uuid.UUID) (*model.Sale, error) {
	var sale model.Sale
	err := r.db.Preload("Items").Preload("Customer").First(&sale, "id = ?", id).Error
	return &sale, err
}

// FindSince returns sales created at or after the given instant, newest first.
// The dashboard uses it for the month-bounded window.
func (r *saleRepo) FindSince(since time.Time) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.Preload("Items").
		Where("created_at >= ?", since).
		Order("created_at DESC").
		Find(&sales).Error
	return sales, err
}

func (r *saleRepo) Update(sale *model.Sale) error {
	return r.db.Save(sale).Error
}

func (r *saleRepo) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.SaleItem{}, "sale_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Sale{}, "id = ?", id).Error
	})
}
