package logger

import (
	"preop-service/internal/app/config"
	"preop-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestBuildZapConfig(t *testing.T) {
	driverConfig := &config.DriverConfig{
		Logger: config.Logger{
			Level:               "warn",
			OutputFileName:      "app.log",
			OutputErrorFileName: "app_error.log",
		},
	}

	t.Run("Development Writes To Console", func(t *testing.T) {
		internalConfig := &config.InternalConfig{App: config.App{Env: constvars.AppEnvDevelopment}}
		cfg := buildZapConfig(driverConfig, internalConfig)

		assert.Equal(t, zap.WarnLevel, cfg.Level.Level())
		assert.Equal(t, []string{"stdout"}, cfg.OutputPaths)
		assert.True(t, cfg.Development)
		assert.Equal(t, "json", cfg.Encoding)
	})

	t.Run("Production Writes To Files", func(t *testing.T) {
		internalConfig := &config.InternalConfig{App: config.App{Env: constvars.AppEnvProduction}}
		cfg := buildZapConfig(driverConfig, internalConfig)

		assert.Equal(t, []string{"app.log"}, cfg.OutputPaths)
		assert.Equal(t, []string{"stderr", "app_error.log"}, cfg.ErrorOutputPaths)
		assert.False(t, cfg.Development)
	})

	t.Run("Unknown Level Falls Back To Info", func(t *testing.T) {
		cfg := buildZapConfig(&config.DriverConfig{Logger: config.Logger{Level: "chatty"}}, &config.InternalConfig{})
		assert.Equal(t, zap.InfoLevel, cfg.Level.Level())
	})
}
