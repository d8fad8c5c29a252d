package auth

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/engisim/core/internal/middleware"
	"github.com/engisim/core/internal/models"
	"github.com/engisim/core/internal/pkg/mail"
	"github.com/engisim/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.UserModel{}, &models.UserSession{}))
	return db
}

func newRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api/v1")
	authMW := middleware.Auth(db)
	NewHandler(NewService(db), mail.New(mail.Config{}), zap.NewNop()).RegisterRoutes(api, authMW)
	api.GET("/whoami", authMW, func(c *gin.Context) {
		response.OK(c, gin.H{"id": middleware.CurrentUserID(c)})
	})
	return r
}

func postJSON(r *gin.Engine, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const registerBody = `{"first_name":"Ada","last_name":"Lovelace","email":"ada@example.com","password":"secret123"}`

func TestRegisterThenLogin(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)

	w := postJSON(r, "/api/v1/auth/register", registerBody, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var created authUser
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Equal(t, "ada@example.com", created.Email)
	require.Equal(t, "Ada Lovelace", created.FullName)

	w = postJSON(r, "/api/v1/auth/login",
		`{"email":"ada@example.com","password":"secret123"}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	var login loginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	require.NotEmpty(t, login.Token)
	require.Equal(t, created.ID, login.User.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)

	require.Equal(t, http.StatusCreated, postJSON(r, "/api/v1/auth/register", registerBody, "").Code)

	w := postJSON(r, "/api/v1/auth/register", registerBody, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "User already exists")

	var rows int64
	require.NoError(t, db.Model(&models.UserModel{}).Count(&rows).Error)
	require.EqualValues(t, 1, rows)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)
	require.Equal(t, http.StatusCreated, postJSON(r, "/api/v1/auth/register", registerBody, "").Code)

	w := postJSON(r, "/api/v1/auth/login",
		`{"email":"ada@example.com","password":"wrong"}`, "")
	require.Equal(t, http.StatusForbidden, w.Code)
	require.Contains(t, w.Body.String(), "Incorrect password")

	w = postJSON(r, "/api/v1/auth/login",
		`{"email":"nobody@example.com","password":"secret123"}`, "")
	require.Equal(t, http.StatusForbidden, w.Code)
	require.Contains(t, w.Body.String(), "No account found")
}

func TestLogoutRevokesSession(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)
	require.Equal(t, http.StatusCreated, postJSON(r, "/api/v1/auth/register", registerBody, "").Code)

	w := postJSON(r, "/api/v1/auth/login",
		`{"email":"ada@example.com","password":"secret123"}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	var login loginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	require.Equal(t, http.StatusOK, postJSON(r, "/api/v1/auth/logout", "{}", login.Token).Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req.Clone(req.Context()))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
