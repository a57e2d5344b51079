package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, 10*time.Second, cfg.HTTP.ReadTimeout)
	assert.False(t, cfg.DB.AutoMigrate)
	assert.Equal(t, StorePostgres, cfg.App.Store)
	assert.Equal(t, "postgres://postgres:@localhost:5432/upstream_supply?sslmode=disable", cfg.DB.ConnectionString())
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("HTTP_PORT", "9090")
	v.Set("HTTP_READ_TIMEOUT", "30")
	v.Set("HTTP_WRITE_TIMEOUT", "1m")
	v.Set("DB_AUTO_MIGRATE", "true")
	v.Set("DATABASE_URL", "postgres://u:p@db:5432/x")
	v.Set("STORE", "Memory")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 30*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, time.Minute, cfg.HTTP.WriteTimeout)
	assert.True(t, cfg.DB.AutoMigrate)
	assert.Equal(t, "postgres://u:p@db:5432/x", cfg.DB.ConnectionString())
	assert.Equal(t, StoreMemory, cfg.App.Store)
}

func TestFromViper_InvalidValues(t *testing.T) {
	v := viper.New()
	v.Set("HTTP_READ_TIMEOUT", "pronto")
	_, err := fromViper(v)
	assert.Error(t, err)

	v = viper.New()
	v.Set("HTTP_PORT", "70000")
	_, err = fromViper(v)
	assert.Error(t, err)

	v = viper.New()
	v.Set("STORE", "redis")
	_, err = fromViper(v)
	assert.Error(t, err)
}

func TestDSN_EscapaPassword(t *testing.T) {
	c := DBConfig{Host: "h", Port: 5432, User: "u", Password: "p@ss:w/rd", DBName: "d", SSLMode: "require"}
	assert.Equal(t, "postgres://u:p%40ss%3Aw%2Frd@h:5432/d?sslmode=require", c.DSN())
}
