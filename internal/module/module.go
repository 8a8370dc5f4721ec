package module

import (
	"anvaya-club/internal/global/app"
	"anvaya-club/internal/module/activity"
	"anvaya-club/internal/module/admin"
	"anvaya-club/internal/module/photo"
	"anvaya-club/internal/module/ping"
	"anvaya-club/internal/module/stats"
	"anvaya-club/internal/module/wing"

	"github.com/gin-gonic/gin"
)

type Module interface {
	GetName() string
	Init(a *app.App)
	InitRouter(r *gin.RouterGroup)
}

var Modules []Module

func registerModule(m []Module) {
	Modules = append(Modules, m...)
}

func init() {
	// Register your module here
	registerModule([]Module{
		&ping.ModulePing{},
		&admin.ModuleAdmin{},
		&wing.ModuleWing{},
		&activity.ModuleActivity{},
		&photo.ModulePhoto{},
		&stats.ModuleStats{},
	})
}
