package database

import (
	"path/filepath"
	"testing"

	"github.com/EnrichTheWorld/enrich-the-world-blog/config"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDatabaseSQLite(t *testing.T) {
	cfg := &config.Config{Storage: config.Storage{Driver: "sqlite", SQLitePath: filepath.Join(t.TempDir(), "test.db")}}

	db, err := NewDatabase(cfg)
	require.NoError(t, err)
	require.NotNil(t, db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.NoError(t, sqlDB.Ping())
	sqlDB.Close()
}

func TestNewDatabaseSkipsNonSQLDrivers(t *testing.T) {
	for _, driver := range []string{"memory", "redis"} {
		db, err := NewDatabase(&config.Config{Storage: config.Storage{Driver: driver}})
		assert.NoError(t, err, driver)
		assert.Nil(t, db, driver)
	}
}

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)

	rdb, err := NewRedisClient(&config.Config{Storage: config.Storage{Driver: "redis"}, Redis: config.Redis{Addr: mr.Addr()}})
	require.NoError(t, err)
	require.NotNil(t, rdb)
	defer rdb.Close()

	rdb, err = NewRedisClient(&config.Config{Storage: config.Storage{Driver: "sqlite"}})
	assert.NoError(t, err)
	assert.Nil(t, rdb)
}

func TestNewRedisClientUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewRedisClient(&config.Config{Storage: config.Storage{Driver: "redis"}, Redis: config.Redis{Addr: addr}})
	assert.Error(t, err)
}
