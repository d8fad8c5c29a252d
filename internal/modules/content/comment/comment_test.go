package comment

import (
	"fmt"
	"testing"
	"time"

	"github.com/engisim/core/internal/models"
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
		&models.UserModel{}, &models.ProjectModel{}, &models.CommentModel{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email, fullName, avatar string) *models.UserModel {
	t.Helper()
	u := models.UserModel{
		Email: email, Password: "x",
		Name: "Nick", FullName: fullName, AvatarURL: avatar,
	}
	require.NoError(t, db.Create(&u).Error)
	return &u
}

func TestCommentSnapshotsAuthor(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	u := seedUser(t, db, "grace@example.com", "Grace Hopper", "/uploads/grace.jpg")

	c, err := svc.Create(u.ID, &CreateCommentDTO{ProjectID: "p1", Content: "Impressive mesh quality"})
	require.NoError(t, err)
	require.Equal(t, "Grace Hopper", c.UserName)
	require.Equal(t, "/uploads/grace.jpg", c.UserAvatar)

	// A later profile edit must not rewrite existing comments.
	require.NoError(t, db.Model(u).Updates(map[string]interface{}{
		"full_name": "G. Murray", "avatar_url": "/uploads/new.jpg",
	}).Error)

	var stored models.CommentModel
	require.NoError(t, db.First(&stored, "id = ?", c.ID).Error)
	require.Equal(t, "Grace Hopper", stored.UserName)
	require.Equal(t, "/uploads/grace.jpg", stored.UserAvatar)
}

func TestCommentFallsBackToShortName(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	u := seedUser(t, db, "ada@example.com", "", "")

	c, err := svc.Create(u.ID, &CreateCommentDTO{ProjectID: "p1", Content: "First!"})
	require.NoError(t, err)
	require.Equal(t, "Nick", c.UserName)
}

func TestListNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	u := seedUser(t, db, "grace@example.com", "Grace", "")

	first, err := svc.Create(u.ID, &CreateCommentDTO{ProjectID: "p1", Content: "older"})
	require.NoError(t, err)
	require.NoError(t, db.Model(first).
		UpdateColumn("created_at", time.Now().Add(-time.Hour)).Error)

	second, err := svc.Create(u.ID, &CreateCommentDTO{ProjectID: "p1", Content: "newer"})
	require.NoError(t, err)

	_, err = svc.Create(u.ID, &CreateCommentDTO{ProjectID: "p2", Content: "other project"})
	require.NoError(t, err)

	comments, err := svc.List("p1")
	require.NoError(t, err)
	require.Len(t, comments, 2)
	require.Equal(t, second.ID, comments[0].ID)
	require.Equal(t, first.ID, comments[1].ID)
}

func TestOnlyAuthorDeletes(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	u := seedUser(t, db, "grace@example.com", "Grace", "")

	c, err := svc.Create(u.ID, &CreateCommentDTO{ProjectID: "p1", Content: "mine"})
	require.NoError(t, err)

	require.ErrorIs(t, svc.Delete(c.ID, "someone-else"), errNotCommentOwner)
	require.NoError(t, svc.Delete(c.ID, u.ID))
	require.ErrorIs(t, svc.Delete(c.ID, u.ID), errCommentNotFound)
}
