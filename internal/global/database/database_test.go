package database

import (
	"anvaya-club/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresDSN(t *testing.T) {
	assert.Equal(t, "postgresql://u:p@db:5432/anvaya", postgresDSN("postgresql+asyncpg://u:p@db:5432/anvaya"))
	assert.Equal(t, "postgres://u:p@db/anvaya", postgresDSN("postgres://u:p@db/anvaya"))
	assert.Equal(t, "host=db user=u", postgresDSN("host=db user=u"))
}

func TestMysqlDSN(t *testing.T) {
	dsn := mysqlDSN(config.Mysql{Host: "127.0.0.1", Port: "3306", Username: "root", Password: "pw", DBName: "anvaya"})
	assert.Contains(t, dsn, "root:pw@tcp(127.0.0.1:3306)/anvaya")
	assert.Contains(t, dsn, "parseTime=true")
	assert.Contains(t, dsn, "charset=utf8mb4")
}

func TestOpenSqliteAndReset(t *testing.T) {
	cfg := &config.Config{Mode: config.ModeTest, Database: config.Database{Driver: "sqlite", URL: ":memory:"}}
	db, err := Open(cfg)
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	for _, table := range []string{"wings", "activities", "photos"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}

	require.NoError(t, db.Exec("INSERT INTO wings (name, slug) VALUES ('CodeZero', 'codezero')").Error)
	require.NoError(t, Reset(db))

	var count int64
	require.NoError(t, db.Table("wings").Count(&count).Error)
	assert.Zero(t, count)
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open(&config.Config{Database: config.Database{Driver: "oracle"}})
	assert.Error(t, err)
}
