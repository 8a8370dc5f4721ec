package test

import (
	"anvaya-club/config"
	"anvaya-club/internal/global/app"
	"anvaya-club/internal/global/cache"
	"anvaya-club/internal/global/jwt"
	"anvaya-club/internal/repository"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const (
	AdminUsername = "admin"
	AdminPassword = "correct-horse"
)

var JWTConfig = config.JWT{Secret: "test-secret", Algorithm: "HS256", ExpirationMinutes: 60}

// Env is a wired App over an in-memory database and media fake.
type Env struct {
	App   *app.App
	DB    *gorm.DB
	Media *FakeBed
}

func NewEnv(t *testing.T, opts ...jwt.Option) *Env {
	t.Helper()
	db := NewDB(t)
	auth, err := jwt.New(config.Admin{Username: AdminUsername, Password: AdminPassword}, JWTConfig, opts...)
	require.NoError(t, err)
	media := NewFakeBed()
	return &Env{
		App: &app.App{
			Repo:      repository.New(db),
			Auth:      auth,
			Media:     media,
			Cache:     cache.Noop{},
			MediaRoot: "anvaya",
		},
		DB:    db,
		Media: media,
	}
}

// Token issues an admin token without going through the login endpoint.
func (e *Env) Token(t *testing.T) string {
	t.Helper()
	token, _, err := e.App.Auth.IssueToken(AdminUsername)
	require.NoError(t, err)
	return token
}
