package wing

import (
	"anvaya-club/internal/global/app"
	"anvaya-club/internal/global/logger"
	"log/slog"
)

var (
	log  *slog.Logger
	deps *app.App
)

type ModuleWing struct{}

func (m *ModuleWing) GetName() string {
	return "Wing"
}

func (m *ModuleWing) Init(a *app.App) {
	log = logger.New("Wing")
	deps = a
}
