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

type ProductService interface {
	CreateProduct(req *model.Product, userID, userName string) error
	GetAllProducts() ([]model.Product, error)
	GetProductByID(id uuid.UUID) (*model.Product, error)
	UpdateProduct(id uuid.UUID, req *UpdateProductRequest, userID, userName string) (*model.Product, error)
	DeleteProduct(id uuid.UUID) error
}

// UpdateProductRequest carries a partial update. Nil fields keep the stored
// value, so a price change cannot wipe the stock count.
type UpdateProductRequest struct {
	Name              *string `json:"name"`
	Description       *string `json:"description"`
	Price             *int64  `json:"price"`
	Stock             *int    `json:"stock"`
	LowStockThreshold *int    `json:"low_stock_threshold"`
}

type productService struct {
	productRepo repository.ProductRepository
	db          *gorm.DB
	wsHub       *ws.Hub
}

func NewProductService(pRepo repository.ProductRepository, db *gorm.DB, hub *ws.Hub) ProductService {
	return &productService{
		productRepo: pRepo,
		db:          db,
		wsHub:       hub,
	}
}

func (s *productService) CreateProduct(req *model.Product, userID, userName string) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	if err := s.productRepo.Create(req); err != nil {
		return err
	}

	go s.broadcastStock("product_created", req, nil, userID, userName)
	return nil
}

func (s *productService) GetAllProducts() ([]model.Product, error) {
	return s.productRepo.FindAll()
}

func (s *productService) GetProductByID(id uuid.UUID) (*model.Product, error) {
	return s.productRepo.FindByID(id)
}

func (s *productService) UpdateProduct(id uuid.UUID, req *UpdateProductRequest, userID, userName string) (*model.Product, error) {
	var updatedProduct *model.Product
	var oldStock int

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing model.Product
		if err := tx.Set("gorm:query_option", "FOR UPDATE").First(&existing, "id = ?", id).Error; err != nil {
			return errors.New("product not found")
		}

		oldStock = existing.Stock

		if req.Name != nil {
			existing.Name = *req.Name
		}
		if req.Description != nil {
			existing.Description = *req.Description
		}
		if req.Price != nil {
			existing.Price = *req.Price
		}
		if req.Stock != nil {
			existing.Stock = *req.Stock
		}
		if req.LowStockThreshold != nil {
			existing.LowStockThreshold = *req.LowStockThreshold
		}

		if errs := validator.ValidateStruct(&existing); len(errs) > 0 {
			firstErr := errs[0]
			return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
		}

		if err := tx.Save(&existing).Error; err != nil {
			return err
		}

		updatedProduct = &existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	go s.broadcastStock("product_updated", updatedProduct, &oldStock, userID, userName)
	return updatedProduct, nil
}

func (s *productService) DeleteProduct(id uuid.UUID) error {
	if _, err := s.productRepo.FindByID(id); err != nil {
		return errors.New("product not found")
	}
	return s.productRepo.Delete(id)
}

func (s *productService) broadcastStock(action string, product *model.Product, oldStock *int, userID, userName string) {
	body := map[string]interface{}{
		"id":        product.ID,
		"name":      product.Name,
		"stock":     product.Stock,
		"price":     product.Price,
		"threshold": product.LowStockThreshold,
	}
	if oldStock != nil {
		body["old_stock"] = *oldStock
	}
	payload := map[string]interface{}{
		"type":    "stock_update",
		"action":  action,
		"product": body,
		"user": map[string]interface{}{
			"id":   userID,
			"name": userName,
		},
	}
	msg, _ := json.Marshal(payload)
	s.wsHub.Broadcast <- msg

	if product.IsLowStock() {
		alert := map[string]interface{}{
			"type": "low_stock_alert",
			"product": map[string]interface{}{
				"id":        product.ID,
				"name":      product.Name,
				"stock":     product.Stock,
				"threshold": product.LowStockThreshold,
			},
		}
		msg, _ := json.Marshal(alert)
		s.wsHub.Broadcast <- msg
	}
}
