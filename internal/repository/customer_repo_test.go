package repository

import (
	"testing"

	"go-retail-pos/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCustomerRoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := NewCustomerRepo(db)

	customer := &model.Customer{
		Name:    "Jane Mwangi",
		Email:   "jane@example.com",
		Phone:   "+254700000000",
		Address: "Nairobi",
	}
	require.NoError(t, repo.Create(customer))

	fetched, err := repo.FindByID(customer.ID)
	require.NoError(t, err)
	assert.Equal(t, customer.Name, fetched.Name)
	assert.Equal(t, customer.Email, fetched.Email)
	assert.Equal(t, customer.Phone, fetched.Phone)
	assert.Equal(t, customer.Address, fetched.Address)
	assert.False(t, fetched.CreatedAt.IsZero())
}

func TestCustomerDeleteThenFetchIsNotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewCustomerRepo(db)

	customer := &model.Customer{Name: "Jane Mwangi"}
	require.NoError(t, repo.Create(customer))
	require.NoError(t, repo.Delete(customer.ID))

	_, err := repo.FindByID(customer.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
