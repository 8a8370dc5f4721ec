package server

import (
	"anvaya-club/config"
	"anvaya-club/internal/global/app"
	"anvaya-club/internal/global/cache"
	"anvaya-club/internal/global/database"
	"anvaya-club/internal/global/httpclient"
	"anvaya-club/internal/global/jwt"
	"anvaya-club/internal/global/logger"
	"anvaya-club/internal/global/middleware"
	"anvaya-club/internal/global/pictureBed"
	"anvaya-club/internal/global/sentry"
	"anvaya-club/internal/module"
	"anvaya-club/internal/repository"
	"anvaya-club/tools"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	log  *slog.Logger
	deps *app.App
)

func Init() {
	config.Init()
	cfg := config.Get()
	tools.PanicOnErr(sentry.Init(cfg))
	if sentry.Enabled() {
		serverLog().Info("Sentry enabled", "environment", cfg.Sentry.Environment)
	}

	database.Init()
	httpclient.Init()

	a, err := Wire(context.Background(), cfg)
	tools.PanicOnErr(err)
	deps = a
}

// Wire builds the dependencies shared by every module from an open database and an
// initialized HTTP client.
func Wire(ctx context.Context, cfg *config.Config) (*app.App, error) {
	log := serverLog()
	media, err := pictureBed.New(ctx, cfg, httpclient.Client)
	if err != nil {
		return nil, err
	}
	c, err := cache.New(cfg)
	if err != nil {
		return nil, err
	}
	auth, err := jwt.New(cfg.Admin, cfg.JWT)
	if err != nil {
		return nil, err
	}
	log.Info("dependencies ready",
		"database", cfg.Database.Driver,
		"media", cfg.Media.Driver,
		"cache", cfg.Redis.Addr != "",
	)
	return &app.App{
		Repo:      repository.New(database.DB),
		Auth:      auth,
		Media:     media,
		Cache:     c,
		MediaRoot: cfg.Media.RootFolder,
	}, nil
}

// NewEngine initializes every module with a and mounts them under cfg.Prefix.
func NewEngine(cfg *config.Config, a *app.App) *gin.Engine {
	log := serverLog()
	r := gin.New()

	switch cfg.Mode {
	case config.ModeRelease:
		r.Use(middleware.Logger(logger.Get()))
	case config.ModeDebug:
		r.Use(gin.Logger())
	}
	r.Use(sentry.Middleware())
	r.Use(middleware.SentryEnrichIP())
	r.Use(middleware.Cors(cfg.CORSOrigins))
	r.Use(middleware.Recovery())

	r.GET("/", health)
	r.GET("/health", health)
	if cfg.Media.Driver == "local" {
		r.Static("/uploads", cfg.Storage.Home)
	}

	api := r.Group("/" + cfg.Prefix)
	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Module: %s", m.GetName()))
		m.Init(a)
		m.InitRouter(api)
	}
	return r
}

func Run() {
	cfg := config.Get()
	gin.SetMode(string(cfg.Mode))
	defer sentry.Flush(2 * time.Second)

	r := NewEngine(cfg, deps)
	serverLog().Info("listening", "addr", cfg.Host+":"+cfg.Port, "prefix", cfg.Prefix)
	err := r.Run(cfg.Host + ":" + cfg.Port)
	tools.PanicOnErr(err)
}

// serverLog is created on first use so it picks up the loaded configuration.
func serverLog() *slog.Logger {
	if log == nil {
		log = logger.New("Server")
	}
	return log
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
