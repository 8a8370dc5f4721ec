package ping

import (
	"anvaya-club/internal/global/app"
	"anvaya-club/internal/global/logger"
	"log/slog"
)

var log *slog.Logger

type ModulePing struct{}

func (p *ModulePing) GetName() string {
	return "Ping"
}

func (p *ModulePing) Init(_ *app.App) {
	log = logger.New("Ping")
}
