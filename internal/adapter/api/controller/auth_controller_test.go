package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/gestor-pme/internal/adapter/api/dto"
	"github.com/hugohenrick/gestor-pme/internal/domain/user"
	"github.com/hugohenrick/gestor-pme/internal/navigation"
	"github.com/hugohenrick/gestor-pme/pkg/auth"
	"github.com/hugohenrick/gestor-pme/pkg/logger"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authRouter(t *testing.T, repo user.Repository) *gin.Engine {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	jwtService, err := auth.NewJWTService("segredo-de-teste", time.Hour)
	require.NoError(t, err)
	revocation := auth.NewRedisRevocationStore(rdb)
	c := NewAuthController(repo, jwtService, revocation, logger.Nop())

	r := gin.New()
	r.POST("/auth/login", c.Login)
	r.POST("/auth/refresh", c.RefreshToken)
	g := r.Group("/auth", auth.JWTAuthMiddleware(jwtService, revocation))
	g.POST("/logout", c.Logout)
	g.GET("/me", c.Me)
	g.PATCH("/me/theme", c.ToggleTheme)
	g.PUT("/me/password", c.ChangePassword)
	return r
}

func authorized(t *testing.T, r http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r http.Handler, email, password string) *httptest.ResponseRecorder {
	t.Helper()
	return do(t, r, http.MethodPost, "/auth/login", dto.LoginRequest{Email: email, Password: password})
}

func TestAuthControllerLogin(t *testing.T) {
	active := newUser(t, "Ana", "ana@empresa.com", user.RoleSeller)
	inactive := newUser(t, "Bia", "bia@empresa.com", user.RoleSeller)
	inactive.Active = false
	repo := newMemUsers(active, inactive)
	r := authRouter(t, repo)

	w := login(t, r, "ana@empresa.com", "senha123")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[dto.LoginResponse](t, w)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, resp.AccessToken, resp.RefreshToken)
	assert.Equal(t, []string{active.ID}, repo.lastLogins)

	assert.Equal(t, http.StatusUnauthorized, login(t, r, "ana@empresa.com", "errada").Code)
	assert.Equal(t, http.StatusUnauthorized, login(t, r, "ninguem@empresa.com", "senha123").Code)
	assert.Equal(t, http.StatusUnauthorized, login(t, r, "bia@empresa.com", "errada").Code)
	assert.Equal(t, http.StatusForbidden, login(t, r, "bia@empresa.com", "senha123").Code)
}

func TestAuthControllerMeShowsNavigationForRole(t *testing.T) {
	repo := newMemUsers(newUser(t, "Ana", "ana@empresa.com", user.RoleSeller))
	r := authRouter(t, repo)
	token := decode[dto.LoginResponse](t, login(t, r, "ana@empresa.com", "senha123")).AccessToken

	w := authorized(t, r, http.MethodGet, "/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	sess := decode[dto.SessionResponse](t, w)
	assert.Equal(t, "Vendedor", sess.RoleLabel)
	pages := make([]navigation.Page, 0, len(sess.Navigation))
	for _, item := range sess.Navigation {
		pages = append(pages, item.Page)
	}
	assert.Contains(t, pages, navigation.PagePOS)
	assert.NotContains(t, pages, navigation.PageFinancial)
	assert.NotContains(t, pages, navigation.PageSettings)
}

func TestAuthControllerLogoutRevokesToken(t *testing.T) {
	repo := newMemUsers(newUser(t, "Ana", "ana@empresa.com", user.RoleAdministrator))
	r := authRouter(t, repo)
	token := decode[dto.LoginResponse](t, login(t, r, "ana@empresa.com", "senha123")).AccessToken

	require.Equal(t, http.StatusOK, authorized(t, r, http.MethodGet, "/auth/me", token, nil).Code)
	require.Equal(t, http.StatusOK, authorized(t, r, http.MethodPost, "/auth/logout", token, nil).Code)
	assert.Equal(t, http.StatusUnauthorized, authorized(t, r, http.MethodGet, "/auth/me", token, nil).Code)

	w := do(t, r, http.MethodPost, "/auth/refresh", dto.RefreshTokenRequest{RefreshToken: token})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthControllerRefreshRevokesPreviousToken(t *testing.T) {
	repo := newMemUsers(newUser(t, "Ana", "ana@empresa.com", user.RoleManager))
	r := authRouter(t, repo)
	token := decode[dto.LoginResponse](t, login(t, r, "ana@empresa.com", "senha123")).AccessToken

	w := do(t, r, http.MethodPost, "/auth/refresh", dto.RefreshTokenRequest{RefreshToken: token})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	renewed := decode[dto.LoginResponse](t, w).AccessToken

	assert.Equal(t, http.StatusUnauthorized, authorized(t, r, http.MethodGet, "/auth/me", token, nil).Code)
	assert.Equal(t, http.StatusOK, authorized(t, r, http.MethodGet, "/auth/me", renewed, nil).Code)
}

func TestAuthControllerToggleTheme(t *testing.T) {
	u := newUser(t, "Ana", "ana@empresa.com", user.RoleSeller)
	repo := newMemUsers(u)
	r := authRouter(t, repo)
	token := decode[dto.LoginResponse](t, login(t, r, "ana@empresa.com", "senha123")).AccessToken

	w := authorized(t, r, http.MethodPatch, "/auth/me/theme", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, string(user.ThemeDark), decode[dto.ThemeResponse](t, w).Theme)

	w = authorized(t, r, http.MethodPatch, "/auth/me/theme", token, nil)
	assert.Equal(t, string(user.ThemeLight), decode[dto.ThemeResponse](t, w).Theme)
}

func TestAuthControllerChangePassword(t *testing.T) {
	u := newUser(t, "Ana", "ana@empresa.com", user.RoleSeller)
	repo := newMemUsers(u)
	r := authRouter(t, repo)
	token := decode[dto.LoginResponse](t, login(t, r, "ana@empresa.com", "senha123")).AccessToken

	w := authorized(t, r, http.MethodPut, "/auth/me/password", token,
		dto.ChangePasswordRequest{CurrentPassword: "errada", NewPassword: "nova-senha"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = authorized(t, r, http.MethodPut, "/auth/me/password", token,
		dto.ChangePasswordRequest{CurrentPassword: "senha123", NewPassword: "nova-senha"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.True(t, u.CheckPassword("nova-senha"))
}
