package database

import (
	"anvaya-club/config"
	"anvaya-club/internal/global/sentry/tracing"
	"anvaya-club/internal/model"
	"anvaya-club/tools"
	"strings"

	"github.com/glebarez/sqlite"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// autoMigrateModels lists every table owned by this service.
var autoMigrateModels = []any{
	&model.Wing{},
	&model.Activity{},
	&model.Photo{},
}

func Init() {
	db, err := Open(config.Get())
	tools.PanicOnErr(err)
	tools.PanicOnErr(Migrate(db))
	DB = db
}

// Open connects with the dialector named by cfg.Database.Driver.
func Open(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	gormConfig := &gorm.Config{}
	switch cfg.Mode {
	case config.ModeDebug:
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	default:
		gormConfig.Logger = logger.Discard
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s database", cfg.Database.Driver)
	}

	if cfg.Database.Driver == "sqlite" {
		// one writer; also keeps ":memory:" databases alive across the pool
		sqlDB, err := db.DB()
		if err != nil {
			return nil, errors.WithStack(err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if tracing.IsEnabled() {
		if err := db.Use(tracing.NewGormTracingPlugin(cfg.Database.Driver, cfg.Sentry.DBSlowMs)); err != nil {
			return nil, errors.Wrap(err, "register gorm tracing")
		}
	}
	return db, nil
}

func dialectorFor(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.Database.Driver {
	case "postgres":
		return postgres.Open(postgresDSN(cfg.Database.URL)), nil
	case "mysql":
		if cfg.Database.URL != "" {
			return mysql.Open(cfg.Database.URL), nil
		}
		return mysql.Open(mysqlDSN(cfg.Mysql)), nil
	case "sqlite":
		return sqlite.Open(strings.TrimPrefix(cfg.Database.URL, "sqlite://")), nil
	}
	return nil, errors.Errorf("unsupported database driver %q", cfg.Database.Driver)
}

// postgresDSN accepts SQLAlchemy style URLs such as postgresql+asyncpg://.
func postgresDSN(url string) string {
	if i := strings.Index(url, "://"); i > 0 {
		scheme := url[:i]
		if plus := strings.Index(scheme, "+"); plus > 0 {
			return scheme[:plus] + url[i:]
		}
	}
	return url
}

func mysqlDSN(m config.Mysql) string {
	c := mysqldriver.NewConfig()
	c.User = m.Username
	c.Passwd = m.Password
	c.Net = "tcp"
	c.Addr = m.Host + ":" + m.Port
	c.DBName = m.DBName
	c.ParseTime = true
	c.Params = map[string]string{"charset": "utf8mb4"}
	return c.FormatDSN()
}

func Migrate(db *gorm.DB) error {
	return errors.Wrap(db.AutoMigrate(autoMigrateModels...), "auto migrate")
}

// Reset drops and recreates every table. Used by the seeding CLI.
func Reset(db *gorm.DB) error {
	if err := db.Migrator().DropTable(autoMigrateModels...); err != nil {
		return errors.Wrap(err, "drop tables")
	}
	return Migrate(db)
}
