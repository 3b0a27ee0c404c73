// Package config loads process-wide settings from the environment. All
// values are fixed at startup; nothing here is mutated at runtime.
package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// Network
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`
	// CORS allow-list for the frontend dev servers.
	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"http://localhost:5173,http://127.0.0.1:5173"`

	// Hold lifecycle
	HoldTTL       time.Duration `envconfig:"HOLD_TTL" default:"10m"`
	HoldExtendBy  time.Duration `envconfig:"HOLD_EXTEND_BY" default:"5m"`
	SweepInterval time.Duration `envconfig:"SWEEP_INTERVAL" default:"1m"`

	// Shutdown
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

func Load() (Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	return c, err
}
