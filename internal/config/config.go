// Raksha Relay - Real-Time Vehicle Safety Alert Ingestion and Broadcasting
// Copyright 2026 Raksha Networks
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raksha-net/relay

package config

import (
	"fmt"
	"time"
)

// Config holds all relay configuration loaded from defaults, an optional
// YAML file and RELAY_-prefixed environment variables, in that order of
// precedence (env highest).
//
// Config is immutable after Load() and safe for concurrent reads.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Alerts    AlertsConfig    `koanf:"alerts"`
	Websocket WebsocketConfig `koanf:"websocket"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// AlertsConfig holds alert log and simulation settings.
type AlertsConfig struct {
	// LogCapacity bounds the in-memory alert log; oldest records are
	// evicted beyond this.
	LogCapacity int `koanf:"log_capacity"`
	// BurstSize is the number of alerts POST /simulate/burst emits.
	BurstSize int `koanf:"burst_size"`
	// BurstRate paces burst emission, alerts per second.
	BurstRate float64 `koanf:"burst_rate"`
}

// WebsocketConfig holds dashboard subscriber settings.
type WebsocketConfig struct {
	// BroadcastBuffer is the hub's pending-broadcast queue depth.
	BroadcastBuffer int `koanf:"broadcast_buffer"`
	// ClientBuffer is the per-subscriber send queue depth. A subscriber
	// whose queue stays full is evicted rather than allowed to stall
	// the fan-out.
	ClientBuffer int `koanf:"client_buffer"`
	// CheckOrigin enforces Origin-header validation against the CORS
	// origin list on websocket upgrades. Off by default: panic buttons
	// and scripted clients send no Origin header at all.
	CheckOrigin bool `koanf:"check_origin"`
}

// SecurityConfig holds rate limiting and CORS settings.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Validate checks the configuration for values that cannot work. It is
// deliberately lenient: the relay must come up with defaults alone.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Alerts.LogCapacity < 1 {
		return fmt.Errorf("alerts.log_capacity must be positive, got %d", c.Alerts.LogCapacity)
	}
	if c.Alerts.BurstSize < 1 {
		return fmt.Errorf("alerts.burst_size must be positive, got %d", c.Alerts.BurstSize)
	}
	if c.Alerts.BurstRate <= 0 {
		return fmt.Errorf("alerts.burst_rate must be positive, got %f", c.Alerts.BurstRate)
	}
	if c.Websocket.BroadcastBuffer < 1 || c.Websocket.ClientBuffer < 1 {
		return fmt.Errorf("websocket buffers must be positive")
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format %q must be json or console", c.Logging.Format)
	}
	return nil
}
