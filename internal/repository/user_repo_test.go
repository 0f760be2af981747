package repository

import (
	"testing"

	"go-retail-pos/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCreatePersistsInactiveFlag(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepo(db)

	user := &model.User{
		Email:    "former@example.com",
		Name:     "Former Employee",
		Role:     model.RoleStaff,
		IsActive: false,
	}
	require.NoError(t, user.SetPassword("secret123"))
	require.NoError(t, repo.Create(user))

	fetched, err := repo.FindByEmail("former@example.com")
	require.NoError(t, err)
	assert.False(t, fetched.IsActive)

	active := &model.User{
		Email:    "current@example.com",
		Name:     "Current Employee",
		Role:     model.RoleStaff,
		IsActive: true,
	}
	require.NoError(t, active.SetPassword("secret123"))
	require.NoError(t, repo.Create(active))

	fetched, err = repo.FindByEmail("current@example.com")
	require.NoError(t, err)
	assert.True(t, fetched.IsActive)
}

func TestUserUpdatePasswordChangesOnlyTheHash(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepo(db)

	user := &model.User{
		Email:    "jane@example.com",
		Name:     "Jane",
		Role:     model.RoleAdmin,
		IsActive: true,
	}
	require.NoError(t, user.SetPassword("oldsecret"))
	require.NoError(t, repo.Create(user))

	rehashed := &model.User{}
	require.NoError(t, rehashed.SetPassword("newsecret"))
	require.NoError(t, repo.UpdatePassword(user.ID, rehashed.Password))

	fetched, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	assert.True(t, fetched.CheckPassword("newsecret"))
	assert.Equal(t, "Jane", fetched.Name)
	assert.Equal(t, model.RoleAdmin, fetched.Role)
}
