package storage

import (
	"context"
	"fmt"

	appcfg "github.com/engisim/core/internal/config"
)

// Store persists uploaded project assets and returns a public URL for each.
type Store interface {
	// Put writes payload under name and returns the URL clients can fetch it from.
	Put(ctx context.Context, name string, payload []byte, contentType string) (string, error)
}

// New builds the Store selected by the storage config.
func New(cfg appcfg.StorageConfig) (Store, error) {
	switch cfg.Backend {
	case appcfg.StorageLocal, "":
		return NewLocalStore(cfg.UploadDir, cfg.PublicURL)
	case appcfg.StorageS3:
		return NewS3Store(cfg.S3)
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Backend)
	}
}
