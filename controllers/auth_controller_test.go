package controllers_test

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"restopos/controllers"
	"restopos/entity"
	"restopos/middlewares"
	"restopos/repository"
	"restopos/services"
	"restopos/utils"
)

func mustStaffToken(t *testing.T) string {
	t.Helper()
	token, err := utils.GenerateToken(2, entity.RoleStaff, testSecret, time.Hour)
	require.NoError(t, err)
	return token
}

func setupAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.User{}))

	svc := services.NewAuthService(repository.NewUserRepository(db), testSecret, time.Hour)
	_, err = svc.CreateUser("admin@resto.local", "s3cret-pass", "Admin", entity.RoleAdmin)
	require.NoError(t, err)

	ctrl := controllers.NewAuthController(svc)
	r := gin.New()
	r.POST("/auth/login", ctrl.Login)
	r.GET("/auth/me", middlewares.AuthMiddleware(testSecret), ctrl.Me)
	r.GET("/users", middlewares.AuthMiddleware(testSecret, entity.RoleAdmin), ctrl.ListUsers)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestLogin(t *testing.T) {
	r := setupAuthRouter(t)

	t.Run("success", func(t *testing.T) {
		rec := postJSON(r, "/auth/login", `{"email":"admin@resto.local","password":"s3cret-pass"}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		out := envelope(t, rec)
		assert.Equal(t, true, out["success"])
		data := out["data"].(map[string]any)
		assert.NotEmpty(t, data["token"])
		user := data["user"].(map[string]any)
		assert.Equal(t, "admin@resto.local", user["email"])
		_, leaked := user["password"]
		assert.False(t, leaked)
	})

	t.Run("wrong password", func(t *testing.T) {
		rec := postJSON(r, "/auth/login", `{"email":"admin@resto.local","password":"nope-nope"}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, false, envelope(t, rec)["success"])
	})

	t.Run("unknown email", func(t *testing.T) {
		rec := postJSON(r, "/auth/login", `{"email":"ghost@resto.local","password":"whatever1"}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := postJSON(r, "/auth/login", `{"email":"not-an-email"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.NotEmpty(t, envelope(t, rec)["details"])
	})
}

func TestRoleGate(t *testing.T) {
	r := setupAuthRouter(t)

	login := postJSON(r, "/auth/login", `{"email":"admin@resto.local","password":"s3cret-pass"}`)
	require.Equal(t, http.StatusOK, login.Code)
	token := envelope(t, login)["data"].(map[string]any)["token"].(string)

	req, _ := http.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// staff token is rejected by the admin gate
	staffReq, _ := http.NewRequest(http.MethodGet, "/users", nil)
	staffToken := mustStaffToken(t)
	staffReq.Header.Set("Authorization", "Bearer "+staffToken)
	staffRec := httptest.NewRecorder()
	r.ServeHTTP(staffRec, staffReq)
	assert.Equal(t, http.StatusForbidden, staffRec.Code)
}
