package photo

import (
	"anvaya-club/internal/global/app"
	"anvaya-club/internal/global/logger"
	"log/slog"
)

var (
	log  *slog.Logger
	deps *app.App
)

type ModulePhoto struct{}

func (m *ModulePhoto) GetName() string {
	return "Photo"
}

func (m *ModulePhoto) Init(a *app.App) {
	log = logger.New("Photo")
	deps = a
}
