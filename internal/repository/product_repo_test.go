package repository

import (
	"testing"

	"go-retail-pos/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestProductRoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := NewProductRepo(db)

	product := &model.Product{
		Name:              "Rice 1kg",
		Description:       "Long grain",
		Price:             120,
		Stock:             40,
		LowStockThreshold: 10,
	}
	require.NoError(t, repo.Create(product))
	require.NotEqual(t, uuid.Nil, product.ID)
	assert.False(t, product.CreatedAt.IsZero())
	assert.False(t, product.UpdatedAt.IsZero())

	fetched, err := repo.FindByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, product.Name, fetched.Name)
	assert.Equal(t, product.Description, fetched.Description)
	assert.Equal(t, product.Price, fetched.Price)
	assert.Equal(t, product.Stock, fetched.Stock)
	assert.Equal(t, product.LowStockThreshold, fetched.LowStockThreshold)
}

func TestProductUpdateRestamps(t *testing.T) {
	db := openTestDB(t)
	repo := NewProductRepo(db)

	product := &model.Product{Name: "Rice 1kg", Price: 120, Stock: 40}
	require.NoError(t, repo.Create(product))
	createdAt := product.CreatedAt

	product.Price = 130
	require.NoError(t, repo.Update(product))

	fetched, err := repo.FindByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(130), fetched.Price)
	assert.Equal(t, createdAt.Unix(), fetched.CreatedAt.Unix())
	assert.False(t, fetched.UpdatedAt.Before(createdAt))
}

func TestProductDeleteThenFetchIsNotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewProductRepo(db)

	product := &model.Product{Name: "Rice 1kg", Price: 120, Stock: 40}
	require.NoError(t, repo.Create(product))
	require.NoError(t, repo.Delete(product.ID))

	_, err := repo.FindByID(product.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	all, err := repo.FindAll()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestProductUpdateStockInTx(t *testing.T) {
	db := openTestDB(t)
	repo := NewProductRepo(db)

	product := &model.Product{Name: "Rice 1kg", Price: 120, Stock: 40}
	require.NoError(t, repo.Create(product))

	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		return repo.UpdateStock(tx, product.ID, 37)
	}))

	fetched, err := repo.FindByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 37, fetched.Stock)
}
