package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/hostal-api/pkg/config"
)

func TestLoad_SinJWTSecret_Falla(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := config.Load()
	require.Error(t, err, "nunca se arranca firmando con un secreto por defecto")
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoad_ConSecret_AplicaDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto-de-prueba")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 24, cfg.JWT.ExpHours)
	assert.Equal(t, "hostal-api", cfg.JWT.Issuer)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.False(t, cfg.Inventory.AllowNegativeStock, "el stock negativo está prohibido por defecto")
	assert.Equal(t, 5, cfg.Inventory.LowStockThreshold)
}

func TestLoad_EnvVarsSobreescribenDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto-de-prueba")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("KARDEX_ALLOW_NEGATIVE", "true")
	t.Setenv("JWT_EXPIRATION_HOURS", "8")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.True(t, cfg.Inventory.AllowNegativeStock)
	assert.Equal(t, 8, cfg.JWT.ExpHours)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	db := config.DBConfig{
		Host: "db.local", Port: 5433, User: "hostal", Password: "p@ss/word",
		DBName: "hostal", SSLMode: "disable",
	}
	dsn := db.ConnectionString()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "db.local:5433")
	assert.Contains(t, dsn, "sslmode=disable")
	assert.NotContains(t, dsn, "p@ss/word", "la contraseña va URL-encoded")

	db.DatabaseURL = "postgresql://u:p@otro:5432/x"
	assert.Equal(t, "postgresql://u:p@otro:5432/x", db.ConnectionString(), "DATABASE_URL manda si está definido")
}
