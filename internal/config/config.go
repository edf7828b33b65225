// Package config loads runtime configuration from a YAML file with environment
// variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"

	defaultPort       = 2330
	defaultEnv        = "development"
	defaultMongoURI   = "mongodb://localhost:27017"
	defaultMongoDB    = "sendika"
	defaultRedisURL   = "redis://localhost:6379/0"
	defaultContentDir = "data/content"
	defaultStaticDir  = "static"
)

// AppConfig holds runtime startup configuration.
type AppConfig struct {
	Port           int      `yaml:"port"`
	Env            string   `yaml:"env"` // "development" | "production"
	MongoURI       string   `yaml:"mongo_uri"`
	MongoDB        string   `yaml:"mongo_db"`
	RedisURL       string   `yaml:"redis_url"`
	JWTSecret      string   `yaml:"jwt_secret"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	ContentDir     string   `yaml:"content_dir"` // JSON snapshot source for the importer
	StaticDir      string   `yaml:"static_dir"`  // uploaded file storage
	AdminEmail     string   `yaml:"admin_email"`
	AdminPassword  string   `yaml:"admin_password"` // seeds the first admin user, bcrypt-hashed at rest
	S3             S3Config `yaml:"s3"`
}

// S3Config configures the optional object-storage mirror for uploads.
type S3Config struct {
	Enable          bool   `yaml:"enable"`
	Endpoint        string `yaml:"endpoint"`
	Region          string `yaml:"region"`
	Bucket          string `yaml:"bucket"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	CustomDomain    string `yaml:"custom_domain"`
	PathStyleAccess bool   `yaml:"path_style_access"`
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool { return c.Env != "production" }

// Load reads the YAML config at path, applies defaults and env overrides.
// A missing file is not an error; defaults plus environment apply.
func Load(path string) (*AppConfig, error) {
	cfg := &AppConfig{
		Port:       defaultPort,
		Env:        defaultEnv,
		MongoURI:   defaultMongoURI,
		MongoDB:    defaultMongoDB,
		RedisURL:   defaultRedisURL,
		ContentDir: defaultContentDir,
		StaticDir:  defaultStaticDir,
	}

	raw, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	applyEnvOverrides(cfg)

	if cfg.Port <= 0 || cfg.Port > 65535 {
		cfg.Port = defaultPort
	}
	cfg.Env = strings.TrimSpace(strings.ToLower(cfg.Env))
	if cfg.Env == "" {
		cfg.Env = defaultEnv
	}
	if strings.TrimSpace(cfg.MongoDB) == "" {
		cfg.MongoDB = defaultMongoDB
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := envString("SENDIKA_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	}
	if v := envString("SENDIKA_ENV"); v != "" {
		cfg.Env = v
	}
	if v := envString("SENDIKA_MONGO_URI"); v != "" {
		cfg.MongoURI = v
	}
	if v := envString("SENDIKA_MONGO_DB"); v != "" {
		cfg.MongoDB = v
	}
	if v := envString("SENDIKA_REDIS_URL"); v != "" {
		cfg.RedisURL = v
	}
	if v := envString("SENDIKA_JWT_SECRET"); v != "" {
		cfg.JWTSecret = v
	}
	if v := envString("SENDIKA_CONTENT_DIR"); v != "" {
		cfg.ContentDir = v
	}
	if v := envString("SENDIKA_STATIC_DIR"); v != "" {
		cfg.StaticDir = v
	}
	if v := envString("SENDIKA_ALLOWED_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.AllowedOrigins = origins
	}
}

func envString(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
