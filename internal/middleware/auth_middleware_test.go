package middleware

import (
	"errors"
	"net/http/httptest"
	"testing"

	"go-retail-pos/internal/model"
	"go-retail-pos/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserRepo struct {
	users map[uuid.UUID]*model.User
}

func (s *stubUserRepo) FindByEmail(email string) (*model.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, errors.New("record not found")
}

func (s *stubUserRepo) FindByID(id uuid.UUID) (*model.User, error) {
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return nil, errors.New("record not found")
}

func (s *stubUserRepo) FindAll() ([]model.User, error)                { return nil, nil }
func (s *stubUserRepo) Create(*model.User) error                      { return nil }
func (s *stubUserRepo) Update(*model.User) error                      { return nil }
func (s *stubUserRepo) Delete(uuid.UUID) error                        { return nil }
func (s *stubUserRepo) UpdatePassword(uuid.UUID, string) error        { return nil }

func newGatedApp(t *testing.T, users ...*model.User) *fiber.App {
	t.Helper()

	repo := &stubUserRepo{users: map[uuid.UUID]*model.User{}}
	for _, u := range users {
		repo.users[u.ID] = u
	}

	app := fiber.New()
	authed := app.Group("", RequireAuth(repo))
	authed.Get("/dashboard", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"role": c.Locals("user_role")})
	})
	authed.Get("/admin", RequireRole(model.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendStatus(200)
	})
	return app
}

func newUser(role string) *model.User {
	u := &model.User{
		Email:    role + "@example.com",
		Name:     "Test " + role,
		Role:     role,
		IsActive: true,
	}
	u.ID = uuid.New()
	return u
}

func tokenFor(t *testing.T, u *model.User) string {
	t.Helper()
	token, err := jwt.GenerateToken(u.ID, u.Email, u.Name, u.Role)
	require.NoError(t, err)
	return token
}

func TestRequireAuthRejectsMissingToken(t *testing.T) {
	app := newGatedApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/dashboard", nil))
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestRequireAuthRejectsMalformedHeader(t *testing.T) {
	app := newGatedApp(t)

	req := httptest.NewRequest("GET", "/dashboard", nil)
	req.Header.Set("Authorization", "Token abc")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestRequireAuthRejectsGarbageToken(t *testing.T) {
	app := newGatedApp(t)

	req := httptest.NewRequest("GET", "/dashboard", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestRequireAuthRejectsUnknownUser(t *testing.T) {
	ghost := newUser(model.RoleStaff)
	app := newGatedApp(t) // ghost not registered in the repo

	req := httptest.NewRequest("GET", "/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, ghost))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestRequireAuthRejectsInactiveUser(t *testing.T) {
	u := newUser(model.RoleStaff)
	u.IsActive = false
	app := newGatedApp(t, u)

	req := httptest.NewRequest("GET", "/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, u))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestRoleGateAllowsMemberOfSet(t *testing.T) {
	admin := newUser(model.RoleAdmin)
	app := newGatedApp(t, admin)

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, admin))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestRoleGateForbidsNonMember(t *testing.T) {
	staff := newUser(model.RoleStaff)
	app := newGatedApp(t, staff)

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, staff))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)
}

func TestRoleGateUsesStoredRoleNotTokenRole(t *testing.T) {
	// Demoted user: token says admin, DB says staff
	u := newUser(model.RoleAdmin)
	token := tokenFor(t, u)
	u.Role = model.RoleStaff
	app := newGatedApp(t, u)

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)
}
