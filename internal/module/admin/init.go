package admin

import (
	"anvaya-club/internal/global/app"
	"anvaya-club/internal/global/logger"
	"log/slog"
)

var (
	log  *slog.Logger
	deps *app.App
)

type ModuleAdmin struct{}

func (m *ModuleAdmin) GetName() string {
	return "Admin"
}

func (m *ModuleAdmin) Init(a *app.App) {
	log = logger.New("Admin")
	deps = a
}
