package config

import (
	"anvaya-club/tools"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

var cfg *Config

var supportedAlgorithms = []string{"HS256", "HS384", "HS512"}

// Init loads the configuration once at startup and panics when it is unusable.
func Init() {
	c, err := Load()
	tools.PanicOnErr(err)
	cfg = c
}

// Get returns the configuration loaded by Init, nil before that.
func Get() *Config {
	return cfg
}

// Load reads .env, then config.yaml, then the process environment. Later sources win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "load .env")
	}

	v := viper.New()
	setDefaults(v)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "read config.yaml")
		}
	}

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if err := envconfig.Process("", c); err != nil {
		return nil, errors.Wrap(err, "read environment")
	}
	c.normalize()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("port", "8000")
	v.SetDefault("prefix", "api")
	v.SetDefault("mode", string(ModeRelease))
	v.SetDefault("cors_origins", []string{"https://anvaya-aiml.netlify.app", "http://localhost:5173"})
	v.SetDefault("database.driver", "postgres")
	v.SetDefault("jwt.algorithm", "HS256")
	v.SetDefault("jwt.expiration_minutes", 60)
	v.SetDefault("media.driver", "cloudinary")
	v.SetDefault("media.root_folder", "anvaya")
	v.SetDefault("cloudinary.base_url", "https://api.cloudinary.com")
	v.SetDefault("storage.home", "./uploads")
	v.SetDefault("storage.base_url", "http://localhost:8000/uploads")
	v.SetDefault("redis.ttl_seconds", 300)
	v.SetDefault("sentry.sample_rate", 1.0)
	v.SetDefault("sentry.db_slow_ms", 200)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.max_size", 100)
	v.SetDefault("log.max_backups", 7)
	v.SetDefault("log.max_age", 30)
	v.SetDefault("http.timeout_seconds", 60)
}

func (c *Config) normalize() {
	origins := make([]string, 0, len(c.CORSOrigins))
	for _, o := range c.CORSOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	c.CORSOrigins = origins
	c.Prefix = strings.Trim(c.Prefix, "/")
	c.JWT.Algorithm = strings.ToUpper(strings.TrimSpace(c.JWT.Algorithm))
	c.Database.Driver = strings.ToLower(strings.TrimSpace(c.Database.Driver))
	c.Media.Driver = strings.ToLower(strings.TrimSpace(c.Media.Driver))
}

// Validate reports the first setting that makes the server unable to start.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeDebug, ModeRelease, ModeTest:
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}

	switch c.Database.Driver {
	case "postgres", "sqlite":
		if c.Database.URL == "" {
			return errors.New("DATABASE_URL is required")
		}
	case "mysql":
		if c.Database.URL == "" && c.Mysql.Host == "" {
			return errors.New("DATABASE_URL or MYSQL_HOST is required")
		}
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}

	if c.Admin.Username == "" || (c.Admin.Password == "" && c.Admin.PasswordHash == "") {
		return errors.New("ADMIN_USERNAME and ADMIN_PASSWORD (or ADMIN_PASSWORD_HASH) are required")
	}
	if c.JWT.Secret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if !slices.Contains(supportedAlgorithms, c.JWT.Algorithm) {
		return fmt.Errorf("unsupported JWT algorithm %q", c.JWT.Algorithm)
	}
	if c.JWT.ExpirationMinutes <= 0 {
		return errors.New("JWT_EXPIRATION_MINUTES must be positive")
	}

	switch c.Media.Driver {
	case "cloudinary":
		if c.Cloudinary.CloudName == "" || c.Cloudinary.APIKey == "" || c.Cloudinary.APISecret == "" {
			return errors.New("CLOUDINARY_CLOUD_NAME, CLOUDINARY_API_KEY and CLOUDINARY_API_SECRET are required")
		}
	case "s3":
		if c.S3.Bucket == "" {
			return errors.New("S3_BUCKET is required")
		}
	case "local":
		if c.Storage.Home == "" {
			return errors.New("STORAGE_HOME is required")
		}
	default:
		return fmt.Errorf("unsupported media driver %q", c.Media.Driver)
	}
	return nil
}
