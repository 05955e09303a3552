package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestDialector(t *testing.T) {
	for _, tc := range []struct {
		name    string
		url     string
		dialect string
		wantErr bool
	}{
		{name: "sqlite", url: "sqlite://blog.db", dialect: "sqlite"},
		{name: "postgres", url: "postgres://u:p@localhost:5432/blog", dialect: "postgres"},
		{name: "postgresql", url: "postgresql://u:p@localhost:5432/blog", dialect: "postgres"},
		{name: "empty sqlite path", url: "sqlite://", wantErr: true},
		{name: "unknown scheme", url: "mysql://localhost/blog", wantErr: true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			d, err := Dialector(tc.url)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.dialect, d.Name())
		})
	}
}

func TestOpenAndMigrate(t *testing.T) {
	db, err := Open("sqlite://"+filepath.Join(t.TempDir(), "blog.db"), logger.Silent)
	require.NoError(t, err)

	require.NoError(t, Migrate(db))
	assert.True(t, db.Migrator().HasTable("posts"))
	assert.True(t, db.Migrator().HasTable("comments"))
}

func TestInitUsesDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "sqlite://"+filepath.Join(t.TempDir(), "init.db"))
	t.Setenv("DB_MAX_OPEN_CONNS", "5")

	db, err := Init()
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 5, sqlDB.Stats().MaxOpenConnections)
}

func TestLogLevel(t *testing.T) {
	assert.Equal(t, logger.Info, logLevel("INFO"))
	assert.Equal(t, logger.Warn, logLevel("warn"))
	assert.Equal(t, logger.Error, logLevel("error"))
	assert.Equal(t, logger.Silent, logLevel(""))
	assert.Equal(t, logger.Silent, logLevel("verbose"))
}

func TestEnvInt(t *testing.T) {
	t.Setenv("DB_TEST_INT", "12")
	assert.Equal(t, 12, envInt("DB_TEST_INT", 3))

	t.Setenv("DB_TEST_INT", "nope")
	assert.Equal(t, 3, envInt("DB_TEST_INT", 3))

	t.Setenv("DB_TEST_INT", "")
	assert.Equal(t, 3, envInt("DB_TEST_INT", 3))
}
