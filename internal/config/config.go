package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/engisim/core/internal/pkg/mail"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"
	defaultPort       = 3000
	defaultEnv        = "development"
	defaultDSN        = "root:password@tcp(127.0.0.1:3306)/engisim?charset=utf8mb4&parseTime=True&loc=Local"
)

// StorageBackend selects where uploaded files are persisted.
type StorageBackend string

const (
	StorageLocal StorageBackend = "local"
	StorageS3    StorageBackend = "s3"
)

// AppConfig holds runtime startup configuration loaded from YAML.
type AppConfig struct {
	Port           int           `yaml:"port"`
	DSN            string        `yaml:"dsn"` // MySQL DSN
	RedisURL       string        `yaml:"redis_url"`
	Env            string        `yaml:"env"` // "development" | "production"
	AllowedOrigins []string      `yaml:"allowed_origins"`
	JWTSecret      string        `yaml:"jwt_secret"`
	Storage        StorageConfig `yaml:"storage"`
	Mail           mail.Config   `yaml:"mail"`
}

// StorageConfig selects and configures the upload store.
type StorageConfig struct {
	Backend   StorageBackend `yaml:"backend"`    // "local" | "s3"
	UploadDir string         `yaml:"upload_dir"` // local backend; default public/uploads
	PublicURL string         `yaml:"public_url"` // optional absolute URL prefix for local files
	S3        S3Options      `yaml:"s3"`
}

// S3Options configures the object-storage backend.
type S3Options struct {
	Bucket          string `yaml:"bucket"`
	Region          string `yaml:"region"`
	Endpoint        string `yaml:"endpoint"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	CustomDomain    string `yaml:"custom_domain"`
	PathStyleAccess bool   `yaml:"path_style_access"`
}

// Load reads and validates the YAML config file. A missing file yields defaults.
func Load(path string) (*AppConfig, error) {
	cfg := &AppConfig{}

	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *AppConfig) applyDefaults() {
	if c.Port == 0 {
		c.Port = defaultPort
	}
	if strings.TrimSpace(c.DSN) == "" {
		c.DSN = defaultDSN
	}
	if strings.TrimSpace(string(c.Storage.Backend)) == "" {
		c.Storage.Backend = StorageLocal
	}
	if strings.TrimSpace(c.Storage.UploadDir) == "" {
		c.Storage.UploadDir = ResolveRuntimePath("", "public/uploads")
	} else {
		c.Storage.UploadDir = ResolveRuntimePath(c.Storage.UploadDir, "")
	}
	if strings.TrimSpace(c.Env) == "" {
		c.Env = defaultEnv
	}
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool {
	return strings.ToLower(strings.TrimSpace(c.Env)) != "production"
}
