package bookmark

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/engisim/core/internal/database"
	"github.com/engisim/core/internal/middleware"
	"github.com/engisim/core/internal/models"
	sessionpkg "github.com/engisim/core/internal/pkg/session"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
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
	require.NoError(t, db.AutoMigrate(
		&models.UserModel{}, &models.UserSession{},
		&models.ProjectModel{}, &models.BookmarkModel{},
	))
	return db
}

func seedUserWithToken(t *testing.T, db *gorm.DB, email string) (string, string) {
	t.Helper()
	u := models.UserModel{Email: email, Password: "x", Name: "Test"}
	require.NoError(t, db.Create(&u).Error)
	token, _, err := sessionpkg.Issue(db, u.ID, "127.0.0.1", "test", time.Hour)
	require.NoError(t, err)
	return u.ID, token
}

func seedProject(t *testing.T, db *gorm.DB) *models.ProjectModel {
	t.Helper()
	p := models.ProjectModel{
		Title:        "Quadcopter PID Tuning",
		Description:  "Simulink control model",
		SoftwareType: "MATLAB/Simulink",
		FileURL:      "/uploads/quad.zip",
		AuthorID:     "author",
	}
	require.NoError(t, db.Create(&p).Error)
	return &p
}

func newRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api/v1")
	NewHandler(NewService(db)).RegisterRoutes(api, middleware.Auth(db))
	return r
}

func TestDuplicateBookmarkKeepsSingleRow(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	p := seedProject(t, db)

	_, err := svc.Create("alice", p.ID)
	require.NoError(t, err)

	_, err = svc.Create("alice", p.ID)
	require.Error(t, err)
	require.True(t, database.IsDuplicateKey(err))

	var rows int64
	require.NoError(t, db.Model(&models.BookmarkModel{}).Count(&rows).Error)
	require.EqualValues(t, 1, rows)
}

func TestDuplicateBookmarkReturns400(t *testing.T) {
	db := newTestDB(t)
	p := seedProject(t, db)
	_, token := seedUserWithToken(t, db, "alice@example.com")
	r := newRouter(db)

	post := func() *httptest.ResponseRecorder {
		body := bytes.NewBufferString(fmt.Sprintf(`{"project_id":%q}`, p.ID))
		req := httptest.NewRequest(http.MethodPost, "/api/v1/bookmarks", body)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	require.Equal(t, http.StatusCreated, post().Code)

	w := post()
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Already bookmarked")
}

func TestAnonymousBookmarkRejected(t *testing.T) {
	db := newTestDB(t)
	p := seedProject(t, db)
	r := newRouter(db)

	body := bytes.NewBufferString(fmt.Sprintf(`{"project_id":%q}`, p.ID))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookmarks", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	var rows int64
	require.NoError(t, db.Model(&models.BookmarkModel{}).Count(&rows).Error)
	require.Zero(t, rows)
}

func TestRemoveIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	p := seedProject(t, db)

	_, err := svc.Create("alice", p.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Remove("alice", p.ID))
	require.NoError(t, svc.Remove("alice", p.ID))

	saved, err := svc.IsSaved("alice", p.ID)
	require.NoError(t, err)
	require.False(t, saved)
}

func TestSavedCheckAndListing(t *testing.T) {
	db := newTestDB(t)
	p := seedProject(t, db)
	userID, token := seedUserWithToken(t, db, "alice@example.com")
	svc := NewService(db)
	_, err := svc.Create(userID, p.ID)
	require.NoError(t, err)
	r := newRouter(db)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookmarks?project_id="+p.ID, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"saved":true}`, w.Body.String())

	projects, err := svc.ListProjects(userID)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	require.Equal(t, p.ID, projects[0].ID)
}
