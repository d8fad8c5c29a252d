package like

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/engisim/core/internal/middleware"
	"github.com/engisim/core/internal/models"
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
		&models.UserModel{}, &models.ProjectModel{}, &models.LikeModel{},
	))
	return db
}

func seedProject(t *testing.T, db *gorm.DB, authorID string) *models.ProjectModel {
	t.Helper()
	p := models.ProjectModel{
		Title:        "Beam Deflection Study",
		Description:  "FEA of a cantilever beam",
		SoftwareType: "Ansys Mechanical",
		FileURL:      "/uploads/beam.zip",
		AuthorID:     authorID,
	}
	require.NoError(t, db.Create(&p).Error)
	return &p
}

func TestToggleFlipsStateAndCount(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	p := seedProject(t, db, "author")

	action, count, err := svc.Toggle("alice", p.ID)
	require.NoError(t, err)
	require.Equal(t, actionLiked, action)
	require.Equal(t, 1, count)

	action, count, err = svc.Toggle("alice", p.ID)
	require.NoError(t, err)
	require.Equal(t, actionUnliked, action)
	require.Equal(t, 0, count)

	var rows int64
	require.NoError(t, db.Model(&models.LikeModel{}).Count(&rows).Error)
	require.Zero(t, rows)

	var project models.ProjectModel
	require.NoError(t, db.First(&project, "id = ?", p.ID).Error)
	require.Zero(t, project.Likes)
}

func TestTwoUsersLikeIndependently(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	p := seedProject(t, db, "author")

	_, _, err := svc.Toggle("alice", p.ID)
	require.NoError(t, err)
	_, count, err := svc.Toggle("bob", p.ID)
	require.NoError(t, err)
	require.Equal(t, 2, count)

	count, liked, err := svc.Status(p.ID, "alice")
	require.NoError(t, err)
	require.Equal(t, 2, count)
	require.True(t, liked)

	_, liked, err = svc.Status(p.ID, "carol")
	require.NoError(t, err)
	require.False(t, liked)
}

func TestToggleRequiresAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)
	p := seedProject(t, db, "author")

	r := gin.New()
	api := r.Group("/api/v1")
	NewHandler(NewService(db)).RegisterRoutes(api, middleware.Auth(db), middleware.OptionalAuth(db))

	body := bytes.NewBufferString(fmt.Sprintf(`{"project_id":%q}`, p.ID))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/likes", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)

	var rows int64
	require.NoError(t, db.Model(&models.LikeModel{}).Count(&rows).Error)
	require.Zero(t, rows)
}

func TestStatusWithoutAuthStillCounts(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)
	svc := NewService(db)
	p := seedProject(t, db, "author")
	_, _, err := svc.Toggle("alice", p.ID)
	require.NoError(t, err)

	r := gin.New()
	api := r.Group("/api/v1")
	NewHandler(svc).RegisterRoutes(api, middleware.Auth(db), middleware.OptionalAuth(db))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/likes?project_id="+p.ID, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"likes":1,"liked":false}`, w.Body.String())
}
