package controller

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/gestor-pme/internal/adapter/api/dto"
	"github.com/hugohenrick/gestor-pme/internal/domain/user"
	"github.com/hugohenrick/gestor-pme/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUser(t *testing.T, name, email string, role user.Role) *user.User {
	t.Helper()
	u, err := user.NewUser(name, email, role, "senha123")
	require.NoError(t, err)
	return u
}

func userRouter(repo user.Repository) *gin.Engine {
	c := NewUserController(repo, logger.Nop())
	r := gin.New()
	r.POST("/setup/admin", c.CreateAdminUser)
	g := r.Group("/users", asUser("admin-1", user.RoleAdministrator))
	g.POST("", c.Create)
	g.GET("", c.List)
	g.GET("/:id", c.GetByID)
	g.PUT("/:id", c.Update)
	return r
}

func TestUserControllerSetupAdmin(t *testing.T) {
	repo := newMemUsers()
	r := userRouter(repo)
	body := dto.SetupAdminRequest{FullName: "Ana Souza", Email: "ana@empresa.com", Password: "segredo1"}

	w := do(t, r, http.MethodPost, "/setup/admin", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[dto.UserResponse](t, w)
	assert.Equal(t, string(user.RoleAdministrator), created.Role)
	assert.True(t, created.Active)

	w = do(t, r, http.MethodPost, "/setup/admin", body)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, 1, repo.Len())
}

func TestUserControllerListFiltersByRole(t *testing.T) {
	repo := newMemUsers(
		newUser(t, "Ana", "ana@empresa.com", user.RoleAdministrator),
		newUser(t, "Bruno", "bruno@empresa.com", user.RoleSeller),
		newUser(t, "Carla", "carla@empresa.com", user.RoleSeller),
	)
	r := userRouter(repo)

	w := do(t, r, http.MethodGet, "/users?role=vendedor", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]dto.UserResponse](t, w), 2)

	w = do(t, r, http.MethodGet, "/users?role=admin", nil)
	require.Equal(t, http.StatusOK, w.Code)
	admins := decode[[]dto.UserResponse](t, w)
	require.Len(t, admins, 1)
	assert.Equal(t, "Ana", admins[0].FullName)

	w = do(t, r, http.MethodGet, "/users?role=all", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]dto.UserResponse](t, w), 3)

	w = do(t, r, http.MethodGet, "/users?role=gerente-geral", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserControllerUpdateKeepsPasswordWhenEmpty(t *testing.T) {
	u := newUser(t, "Bruno", "bruno@empresa.com", user.RoleSeller)
	repo := newMemUsers(u)
	r := userRouter(repo)

	w := do(t, r, http.MethodPut, "/users/"+u.ID, dto.UpdateUserRequest{
		FullName: "Bruno Lima",
		Email:    "bruno@empresa.com",
		Role:     string(user.RoleManager),
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	stored, err := repo.FindByID(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bruno Lima", stored.FullName)
	assert.Equal(t, user.RoleManager, stored.Role)
	assert.True(t, stored.CheckPassword("senha123"))
}

func TestUserControllerGetUnknown(t *testing.T) {
	r := userRouter(newMemUsers())

	w := do(t, r, http.MethodGet, "/users/nao-existe", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserControllerCreateRejectsInvalidRole(t *testing.T) {
	r := userRouter(newMemUsers())

	w := do(t, r, http.MethodPost, "/users", dto.CreateUserRequest{
		FullName: "Davi",
		Email:    "davi@empresa.com",
		Password: "segredo1",
		Role:     "diretor",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
