package repository

import (
	"testing"
	"time"

	"go-retail-pos/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedSaleAt(t *testing.T, db *gorm.DB, createdAt time.Time, total int64) *model.Sale {
	t.Helper()

	customer := &model.Customer{Name: "Walk-in"}
	require.NoError(t, db.Create(customer).Error)

	sale := &model.Sale{
		CustomerID:    customer.ID,
		TotalAmount:   total,
		PaymentMethod: model.PaymentCash,
		Status:        model.SaleCompleted,
		Items: []model.SaleItem{
			{ProductID: uuid.New(), Quantity: 1, UnitPrice: total, TotalPrice: total},
		},
	}
	sale.CreatedAt = createdAt
	require.NoError(t, db.Create(sale).Error)
	return sale
}

func TestSaleFindSinceBoundsTheWindow(t *testing.T) {
	db := openTestDB(t)
	repo := NewSaleRepo(db)

	cutoff := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	seedSaleAt(t, db, cutoff.AddDate(0, 0, -1), 10) // before the window
	inWindow := seedSaleAt(t, db, cutoff.AddDate(0, 0, 3), 20)
	atCutoff := seedSaleAt(t, db, cutoff, 30)

	sales, err := repo.FindSince(cutoff)
	require.NoError(t, err)
	require.Len(t, sales, 2)

	// Newest first
	assert.Equal(t, inWindow.ID, sales[0].ID)
	assert.Equal(t, atCutoff.ID, sales[1].ID)
	require.Len(t, sales[0].Items, 1)
}

func TestSaleFindByIDPreloadsItems(t *testing.T) {
	db := openTestDB(t)
	repo := NewSaleRepo(db)

	sale := seedSaleAt(t, db, time.Now(), 50)

	fetched, err := repo.FindByID(sale.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Items, 1)
	assert.Equal(t, int64(50), fetched.Items[0].TotalPrice)
	assert.NotNil(t, fetched.Customer)
}

func TestSaleDeleteRemovesItems(t *testing.T) {
	db := openTestDB(t)
	repo := NewSaleRepo(db)

	sale := seedSaleAt(t, db, time.Now(), 50)
	require.NoError(t, repo.Delete(sale.ID))

	_, err := repo.FindByID(sale.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var itemCount int64
	db.Model(&model.SaleItem{}).Where("sale_id = ?", sale.ID).Count(&itemCount)
	assert.Zero(t, itemCount)
}
