package service

import (
	"errors"
	"fmt"

	"go-retail-pos/internal/model"
	"go-retail-pos/internal/repository"
	"go-retail-pos/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PurchaseService interface {
	CreatePurchase(req *model.Purchase) error
	GetAllPurchases() ([]model.Purchase, error)
	GetPurchaseByID(id uuid.UUID) (*model.Purchase, error)
	UpdatePurchase(id uuid.UUID, req *model.Purchase) (*model.Purchase, error)
	DeletePurchase(id uuid.UUID) error
}

type purchaseService struct {
	purchaseRepo repository.PurchaseRepository
	productRepo  repository.ProductRepository
	db           *gorm.DB
}

func NewPurchaseService(pRepo repository.PurchaseRepository, prodRepo repository.ProductRepository, db *gorm.DB) PurchaseService {
	return &purchaseService{
		purchaseRepo: pRepo,
		productRepo:  prodRepo,
		db:           db,
	}
}

// CreatePurchase records an inbound order. Stock is received only when the
// purchase is completed; pending orders hold no stock.
func (s *purchaseService) CreatePurchase(req *model.Purchase) error {
	if req.Status == "" {
		req.Status = model.PurchasePending
	}

	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	for i := range req.Items {
		expected := req.Items[i].UnitPrice * int64(req.Items[i].Quantity)
		if req.Items[i].TotalPrice == 0 {
			req.Items[i].TotalPrice = expected
		} else if req.Items[i].TotalPrice != expected {
			return ErrLineTotalMismatch
		}
	}
	if req.TotalAmount == 0 {
		req.TotalAmount = req.ItemsTotal()
	} else if req.TotalAmount != req.ItemsTotal() {
		return ErrTotalMismatch
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if req.Status == model.PurchaseCompleted {
			if err := s.receiveStock(tx, req.Items); err != nil {
				return err
			}
		}
		return s.purchaseRepo.Create(tx, req)
	})
}

func (s *purchaseService) GetAllPurchases() ([]model.Purchase, error) {
	return s.purchaseRepo.FindAll()
}

func (s *purchaseService) GetPurchaseByID(id uuid.UUID) (*model.Purchase, error) {
	return s.purchaseRepo.FindByID(id)
}

// UpdatePurchase merges header fields. Completing a pending purchase
// receives its stock; other transitions leave stock untouched.
func (s *purchaseService) UpdatePurchase(id uuid.UUID, req *model.Purchase) (*model.Purchase, error) {
	existing, err := s.purchaseRepo.FindByID(id)
	if err != nil {
		return nil, errors.New("purchase not found")
	}

	completing := req.Status == model.PurchaseCompleted && existing.Status != model.PurchaseCompleted

	if req.Status != "" {
		existing.Status = req.Status
	}
	if req.SupplierID != uuid.Nil {
		existing.SupplierID = req.SupplierID
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if completing {
			if err := s.receiveStock(tx, existing.Items); err != nil {
				return err
			}
		}
		return tx.Save(existing).Error
	})
	if err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *purchaseService) DeletePurchase(id uuid.UUID) error {
	if _, err := s.purchaseRepo.FindByID(id); err != nil {
		return errors.New("purchase not found")
	}
	return s.purchaseRepo.Delete(id)
}

func (s *purchaseService) receiveStock(tx *gorm.DB, items []model.PurchaseItem) error {
	for _, item := range items {
		var product model.Product
		if err := tx.Set("gorm:query_option", "FOR UPDATE").First(&product, "id = ?", item.ProductID).Error; err != nil {
			return ErrProductNotFound
		}
		if err := s.productRepo.UpdateStock(tx, product.ID, product.Stock+item.Quantity); err != nil {
			return err
		}
	}
	return nil
}
