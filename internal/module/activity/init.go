package activity

import (
	"anvaya-club/internal/global/app"
	"anvaya-club/internal/global/logger"
	"log/slog"
)

var (
	log  *slog.Logger
	deps *app.App
)

type ModuleActivity struct{}

func (m *ModuleActivity) GetName() string {
	return "Activity"
}

func (m *ModuleActivity) Init(a *app.App) {
	log = logger.New("Activity")
	deps = a
}
