package service

import (
	"errors"
	"fmt"

	"go-retail-pos/internal/model"
	"go-retail-pos/internal/repository"
	"go-retail-pos/pkg/validator"

	"github.com/google/uuid"
)

type SupplierService interface {
	CreateSupplier(req *model.Supplier) error
	GetAllSuppliers() ([]model.Supplier, error)
	GetSupplierByID(id uuid.UUID) (*model.Supplier, error)
	UpdateSupplier(id uuid.UUID, req *model.Supplier) (*model.Supplier, error)
	DeleteSupplier(id uuid.UUID) error
}

type supplierService struct {
	supplierRepo repository.SupplierRepository
}

func NewSupplierService(sRepo repository.SupplierRepository) SupplierService {
	return &supplierService{supplierRepo: sRepo}
}

func (s *supplierService) CreateSupplier(req *model.Supplier) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}
	return s.supplierRepo.Create(req)
}

func (s *supplierService) GetAllSuppliers() ([]model.Supplier, error) {
	return s.supplierRepo.FindAll()
}

func (s *supplierService) GetSupplierByID(id uuid.UUID) (*model.Supplier, error) {
	return s.supplierRepo.FindByID(id)
}

func (s *supplierService) UpdateSupplier(id uuid.UUID, req *model.Supplier) (*model.Supplier, error) {
	existing, err := s.supplierRepo.FindByID(id)
	if err != nil {
		return nil, errors.New("supplier not found")
	}

	if req.Name != "" {
		existing.Name = req.Name
	}
	if req.Email != "" {
		existing.Email = req.Email
	}
	if req.Phone != "" {
		existing.Phone = req.Phone
	}
	if req.Address != "" {
		existing.Address = req.Address
	}

	if errs := validator.ValidateStruct(existing); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	if err := s.supplierRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *supplierService) DeleteSupplier(id uuid.UUID) error {
	if _, err := s.supplierRepo.FindByID(id); err != nil {
		return errors.New("supplier not found")
	}
	return s.supplierRepo.Delete(id)
}
