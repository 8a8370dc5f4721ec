package stats

import (
	"anvaya-club/internal/global/app"
	"anvaya-club/internal/global/logger"
	"log/slog"
)

var (
	log  *slog.Logger
	deps *app.App
)

type ModuleStats struct{}

func (*ModuleStats) GetName() string {
	return "Stats"
}

func (*ModuleStats) Init(a *app.App) {
	log = logger.New("Stats")
	deps = a
}
