package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DATABASE_URL", "postgresql+asyncpg://u:p@localhost:5432/anvaya")
	t.Setenv("ADMIN_USERNAME", "admin")
	t.Setenv("ADMIN_PASSWORD", "secret")
	t.Setenv("JWT_SECRET", "jwt-secret")
	t.Setenv("CLOUDINARY_CLOUD_NAME", "demo")
	t.Setenv("CLOUDINARY_API_KEY", "key")
	t.Setenv("CLOUDINARY_API_SECRET", "api-secret")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", c.Host)
	assert.Equal(t, "8000", c.Port)
	assert.Equal(t, "api", c.Prefix)
	assert.Equal(t, ModeRelease, c.Mode)
	assert.Equal(t, "postgres", c.Database.Driver)
	assert.Equal(t, "HS256", c.JWT.Algorithm)
	assert.Equal(t, 60, c.JWT.ExpirationMinutes)
	assert.Equal(t, "cloudinary", c.Media.Driver)
	assert.Equal(t, "anvaya", c.Media.RootFolder)
	assert.Equal(t, "demo", c.Cloudinary.CloudName)
	assert.Equal(t, "https://api.cloudinary.com", c.Cloudinary.BaseURL)
	assert.Equal(t, 60, c.HTTPClient.TimeoutSeconds)
	assert.Equal(t, 300, c.Redis.TTLSeconds)
	assert.Contains(t, c.CORSOrigins, "http://localhost:5173")
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("MODE", "debug")
	t.Setenv("PREFIX", "/v1/")
	t.Setenv("CORS_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("JWT_ALGORITHM", "hs512")
	t.Setenv("JWT_EXPIRATION_MINUTES", "15")
	t.Setenv("MEDIA_DRIVER", "LOCAL")
	t.Setenv("STORAGE_HOME", "/tmp/media")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("HTTP_TIMEOUT_SECONDS", "5")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ModeDebug, c.Mode)
	assert.Equal(t, "v1", c.Prefix)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, c.CORSOrigins)
	assert.Equal(t, "HS512", c.JWT.Algorithm)
	assert.Equal(t, 15, c.JWT.ExpirationMinutes)
	assert.Equal(t, "local", c.Media.Driver)
	assert.Equal(t, "/tmp/media", c.Storage.Home)
	assert.Equal(t, "localhost:6379", c.Redis.Addr)
	assert.Equal(t, 5, c.HTTPClient.TimeoutSeconds)
}

func TestLoadConfigFile(t *testing.T) {
	setRequired(t)
	yaml := "port: \"9000\"\nmedia:\n  root_folder: club\njwt:\n  expiration_minutes: 30\n"
	require.NoError(t, os.WriteFile(filepath.Join(".", "config.yaml"), []byte(yaml), 0o644))
	t.Setenv("JWT_EXPIRATION_MINUTES", "45")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", c.Port)
	assert.Equal(t, "club", c.Media.RootFolder)
	// the environment wins over the file
	assert.Equal(t, 45, c.JWT.ExpirationMinutes)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Mode:       ModeRelease,
			Database:   Database{Driver: "postgres", URL: "postgres://x"},
			Admin:      Admin{Username: "admin", Password: "pw"},
			JWT:        JWT{Secret: "s", Algorithm: "HS256", ExpirationMinutes: 60},
			Media:      Media{Driver: "cloudinary"},
			Cloudinary: Cloudinary{CloudName: "demo", APIKey: "k", APISecret: "s"},
		}
	}
	require.NoError(t, valid().Validate())

	cases := map[string]func(c *Config){
		"mode":             func(c *Config) { c.Mode = "prod" },
		"database url":     func(c *Config) { c.Database.URL = "" },
		"database driver":  func(c *Config) { c.Database.Driver = "oracle" },
		"mysql host":       func(c *Config) { c.Database = Database{Driver: "mysql"} },
		"admin password":   func(c *Config) { c.Admin.Password = "" },
		"jwt secret":       func(c *Config) { c.JWT.Secret = "" },
		"jwt algorithm":    func(c *Config) { c.JWT.Algorithm = "RS256" },
		"jwt expiration":   func(c *Config) { c.JWT.ExpirationMinutes = 0 },
		"cloudinary creds": func(c *Config) { c.Cloudinary.APISecret = "" },
		"s3 bucket":        func(c *Config) { c.Media.Driver = "s3" },
		"media driver":     func(c *Config) { c.Media.Driver = "ftp" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := valid()
			mutate(c)
			assert.Error(t, c.Validate())
		})
	}

	c := valid()
	c.Admin = Admin{Username: "admin", PasswordHash: "$2a$10$abc"}
	assert.NoError(t, c.Validate())

	c = valid()
	c.Database = Database{Driver: "mysql"}
	c.Mysql.Host = "db"
	assert.NoError(t, c.Validate())
}
