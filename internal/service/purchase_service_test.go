package service

import (
	"testing"

	"go-retail-pos/internal/model"
	"go-retail-pos/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newPurchaseService(t *testing.T) (PurchaseService, repository.ProductRepository, *gorm.DB) {
	t.Helper()

	db := openTestDB(t)
	productRepo := repository.NewProductRepo(db)
	purchaseRepo := repository.NewPurchaseRepo(db)
	return NewPurchaseService(purchaseRepo, productRepo, db), productRepo, db
}

func seedSupplier(t *testing.T, db *gorm.DB) *model.Supplier {
	t.Helper()
	s := &model.Supplier{Name: "Acme Wholesale"}
	require.NoError(t, db.Create(s).Error)
	return s
}

func TestCreatePendingPurchaseHoldsNoStock(t *testing.T) {
	svc, productRepo, db := newPurchaseService(t)
	product := seedProduct(t, productRepo, 5, 3)
	supplier := seedSupplier(t, db)

	purchase := &model.Purchase{
		SupplierID: supplier.ID,
		Items: []model.PurchaseItem{
			{ProductID: product.ID, Quantity: 10, UnitPrice: 2},
		},
	}
	require.NoError(t, svc.CreatePurchase(purchase))

	assert.Equal(t, model.PurchasePending, purchase.Status)
	assert.Equal(t, int64(20), purchase.TotalAmount)

	unchanged, err := productRepo.FindByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, unchanged.Stock)
}

func TestCreateCompletedPurchaseReceivesStock(t *testing.T) {
	svc, productRepo, db := newPurchaseService(t)
	product := seedProduct(t, productRepo, 5, 3)
	supplier := seedSupplier(t, db)

	purchase := &model.Purchase{
		SupplierID: supplier.ID,
		Status:     model.PurchaseCompleted,
		Items: []model.PurchaseItem{
			{ProductID: product.ID, Quantity: 10, UnitPrice: 2, TotalPrice: 20},
		},
		TotalAmount: 20,
	}
	require.NoError(t, svc.CreatePurchase(purchase))

	updated, err := productRepo.FindByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 15, updated.Stock)
}

func TestCompletingPurchaseReceivesStockOnce(t *testing.T) {
	svc, productRepo, db := newPurchaseService(t)
	product := seedProduct(t, productRepo, 5, 3)
	supplier := seedSupplier(t, db)

	purchase := &model.Purchase{
		SupplierID: supplier.ID,
		Items: []model.PurchaseItem{
			{ProductID: product.ID, Quantity: 10, UnitPrice: 2},
		},
	}
	require.NoError(t, svc.CreatePurchase(purchase))

	_, err := svc.UpdatePurchase(purchase.ID, &model.Purchase{Status: model.PurchaseCompleted})
	require.NoError(t, err)

	received, err := productRepo.FindByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 15, received.Stock)

	// Completing again is a no-op for stock
	_, err = svc.UpdatePurchase(purchase.ID, &model.Purchase{Status: model.PurchaseCompleted})
	require.NoError(t, err)

	again, err := productRepo.FindByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 15, again.Stock)
}
