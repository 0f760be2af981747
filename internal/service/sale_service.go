package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"go-retail-pos/internal/model"
	"go-retail-pos/internal/repository"
	"go-retail-pos/internal/ws"
	"go-retail-pos/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock remaining")
	ErrTotalMismatch     = errors.New("total_amount does not match the sum of item totals")
	ErrLineTotalMismatch = errors.New("item total_price does not match unit_price * quantity")
)

type SaleService interface {
	CreateSale(req *model.Sale, userID, userName string) error
	GetAllSales() ([]model.Sale, error)
	GetSaleByID(id uuid.UUID) (*model.Sale, error)
	UpdateSale(id uuid.UUID, req *model.Sale) (*model.Sale, error)
	DeleteSale(id uuid.UUID) error
}

type saleService struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
	db          *gorm.DB
	wsHub       *ws.Hub
}

func NewSaleService(sRepo repository.SaleRepository, pRepo repository.ProductRepository, db *gorm.DB, hub *ws.Hub) SaleService {
	return &saleService{
		saleRepo:    sRepo,
		productRepo: pRepo,
		db:          db,
		wsHub:       hub,
	}
}

// CreateSale records a sale and decrements stock for every line inside one
// DB transaction. The sale is rejected whole if any line fails.
func (s *saleService) CreateSale(req *model.Sale, userID, userName string) error {
	// The POS form stamps new sales as completed unless told otherwise
	if req.Status == "" {
		req.Status = model.SaleCompleted
	}

	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	// Line totals are snapshots: fill when omitted, reject when inconsistent
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

	type stockChange struct {
		product  model.Product
		newStock int
	}
	var changes []stockChange

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, item := range req.Items {
			var product model.Product
			if err := tx.Set("gorm:query_option", "FOR UPDATE").First(&product, "id = ?", item.ProductID).Error; err != nil {
				return ErrProductNotFound
			}

			if product.Stock < item.Quantity {
				return ErrInsufficientStock
			}
			newStock := product.Stock - item.Quantity

			if err := s.productRepo.UpdateStock(tx, product.ID, newStock); err != nil {
				return err
			}
			changes = append(changes, stockChange{product: product, newStock: newStock})
		}

		return s.saleRepo.Create(tx, req)
	})
	if err != nil {
		return err
	}

	go func() {
		payload := map[string]interface{}{
			"type": "sale_recorded",
			"sale": map[string]interface{}{
				"id":             req.ID,
				"customer_id":    req.CustomerID,
				"total_amount":   req.TotalAmount,
				"payment_method": req.PaymentMethod,
				"item_count":     len(req.Items),
			},
			"user": map[string]interface{}{
				"id":   userID,
				"name": userName,
			},
			"message": fmt.Sprintf("%s recorded a sale of %d", userName, req.TotalAmount),
		}
		msg, _ := json.Marshal(payload)
		s.wsHub.Broadcast <- msg

		// Raise low-stock alerts for lines that crossed the threshold
		for _, c := range changes {
			if c.newStock <= c.product.LowStockThreshold {
				alert := map[string]interface{}{
					"type": "low_stock_alert",
					"product": map[string]interface{}{
						"id":        c.product.ID,
						"name":      c.product.Name,
						"stock":     c.newStock,
						"threshold": c.product.LowStockThreshold,
					},
				}
				msg, _ := json.Marshal(alert)
				s.wsHub.Broadcast <- msg
			}
		}
	}()

	return nil
}

func (s *saleService) GetAllSales() ([]model.Sale, error) {
	return s.saleRepo.FindAll()
}

func (s *saleService) GetSaleByID(id uuid.UUID) (*model.Sale, error) {
	return s.saleRepo.FindByID(id)
}

// UpdateSale merges mutable header fields. Line items and stock are settled
// at creation time and never reopened here.
func (s *saleService) UpdateSale(id uuid.UUID, req *model.Sale) (*model.Sale, error) {
	existing, err := s.saleRepo.FindByID(id)
	if err != nil {
		return nil, errors.New("sale not found")
	}

	if req.PaymentMethod != "" {
		existing.PaymentMethod = req.PaymentMethod
	}
	if req.Status != "" {
		existing.Status = req.Status
	}
	if req.CustomerID != uuid.Nil {
		existing.CustomerID = req.CustomerID
	}

	if errs := validator.ValidateStruct(existing); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	if err := s.saleRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *saleService) DeleteSale(id uuid.UUID) error {
	if _, err := s.saleRepo.FindByID(id); err != nil {
		return errors.New("sale not found")
	}
	return s.saleRepo.Delete(id)
}
