package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"net/http"
	"time"

	redispkg "github.com/engisim/core/internal/pkg/redis"
	"github.com/engisim/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const idempotenceTTL = 60 * time.Second

// skipIdempotence lists paths where identical retries are expected and harmless.
var skipIdempotence = map[string]bool{
	"/api/v1/auth/login": true,
}

// Idempotence rejects duplicate mutating requests seen within a short window.
// The dedup key is scoped to the caller: two accounts behind the same IP must
// never collide, so the bearer token is part of the hash. A key is claimed as
// in-flight before the handler runs, promoted once the handler succeeds, and
// released again when the handler fails so the caller can retry immediately.
func Idempotence(rdb *redispkg.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil || c.Request.Method == http.MethodGet || skipIdempotence[c.Request.URL.Path] {
			c.Next()
			return
		}

		key, err := idempotenceKey(c)
		if err != nil {
			response.BadRequest(c, "Failed to read request body")
			return
		}

		ctx := c.Request.Context()
		val, err := rdb.Raw().Get(ctx, key).Result()
		if err == nil {
			msg := "Duplicate request, try again later"
			if val == "0" {
				msg = "Duplicate request is still being processed"
			}
			response.Error(c, http.StatusConflict, msg)
			return
		}
		if !errors.Is(err, redis.Nil) {
			// Redis outage should not take down writes.
			c.Next()
			return
		}

		if setErr := rdb.Raw().Set(ctx, key, "0", idempotenceTTL).Err(); setErr != nil {
			c.Next()
			return
		}

		c.Next()

		status := c.Writer.Status()
		if status >= 200 && status < 300 {
			rdb.Raw().Set(ctx, key, "1", redis.KeepTTL)
		} else {
			rdb.Raw().Del(ctx, key)
		}
	}
}

// idempotenceKey hashes the request together with the caller's identity.
func idempotenceKey(c *gin.Context) (string, error) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return "", err
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(body))

	token := NormalizeToken(c.GetHeader("Authorization"))
	if token == "" {
		token = NormalizeToken(c.Query("token"))
	}

	raw := c.Request.Method + "|" + c.Request.URL.String() + "|" + string(body) +
		"|" + c.Request.UserAgent() + "|" + c.ClientIP() + "|" + token
	sum := sha256.Sum256([]byte(raw))
	return "idempotence:" + hex.EncodeToString(sum[:]), nil
}
