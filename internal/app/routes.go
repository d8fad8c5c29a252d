package app

import (
	"time"

	"github.com/engisim/core/internal/middleware"
	"github.com/engisim/core/internal/modules/auth/auth"
	"github.com/engisim/core/internal/modules/auth/user"
	"github.com/engisim/core/internal/modules/content/bookmark"
	"github.com/engisim/core/internal/modules/content/comment"
	"github.com/engisim/core/internal/modules/content/like"
	"github.com/engisim/core/internal/modules/content/project"
	"github.com/engisim/core/internal/modules/storage"
	"github.com/engisim/core/internal/modules/storage/file"
	"github.com/engisim/core/internal/pkg/mail"
	pkgredis "github.com/engisim/core/internal/pkg/redis"
	"github.com/engisim/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(rc *pkgredis.Client) {
	r := a.router
	db := a.db
	authMW := middleware.Auth(db)
	optionalAuthMW := middleware.OptionalAuth(db)

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	r.GET("/health", func(c *gin.Context) {
		response.OK(c, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	if rc != nil {
		api.Use(middleware.RateLimit(rc, a.logger, 300, time.Minute))
		api.Use(middleware.Idempotence(rc))
	}

	mailer := mail.New(a.cfg.Mail)

	auth.NewHandler(auth.NewService(db), mailer, a.logger).RegisterRoutes(api, authMW)
	user.NewHandler(user.NewService(db)).RegisterRoutes(api, authMW)
	project.NewHandler(project.NewService(db)).RegisterRoutes(api, authMW)
	like.NewHandler(like.NewService(db)).RegisterRoutes(api, authMW, optionalAuthMW)
	bookmark.NewHandler(bookmark.NewService(db)).RegisterRoutes(api, authMW)
	comment.NewHandler(comment.NewService(db)).RegisterRoutes(api, authMW)
	file.NewHandler(a.store).RegisterRoutes(api, authMW)

	// Locally stored assets are served straight from disk.
	if local, ok := a.store.(*storage.LocalStore); ok {
		r.Static("/uploads", local.Dir())
	}
}
