// Package config centralizes all application configuration into typed structs.
//
// Defaults come from NewDefaultConfig. Load overlays them with environment
// variables, after reading an optional .env file from the working directory.
//
// Go Learning Note — "github.com/joho/godotenv":
// godotenv reads KEY=VALUE lines from a .env file into the process
// environment without overwriting variables that are already set. That keeps
// local development convenient (drop a .env next to the binary) while real
// deployments keep using plain environment variables.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is the top-level configuration container.
type Config struct {
	Server ServerConfig
	Geo    GeoConfig
	Render RenderConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// GeoConfig controls how computed centers are labelled. Precision 6 ≈ 1.2 km
// cells, precision 7 ≈ 150 m cells.
type GeoConfig struct {
	GeohashPrecision int
}

// RenderConfig controls textual output of points. A negative precision means
// shortest round-trip formatting instead of fixed decimals.
type RenderConfig struct {
	Precision int
}

// NewDefaultConfig returns a Config populated with sensible defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         ":8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Geo: GeoConfig{
			GeohashPrecision: 6,
		},
		Render: RenderConfig{
			Precision: -1,
		},
	}
}

// Load returns the defaults overlaid with .env and environment variables:
// PORT, READ_TIMEOUT, WRITE_TIMEOUT, GEOHASH_PRECISION, RENDER_PRECISION.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg := NewDefaultConfig()

	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Port = ":" + v
	}
	if err := durationEnv("READ_TIMEOUT", &cfg.Server.ReadTimeout); err != nil {
		return nil, err
	}
	if err := durationEnv("WRITE_TIMEOUT", &cfg.Server.WriteTimeout); err != nil {
		return nil, err
	}
	if err := intEnv("GEOHASH_PRECISION", &cfg.Geo.GeohashPrecision); err != nil {
		return nil, err
	}
	if err := intEnv("RENDER_PRECISION", &cfg.Render.Precision); err != nil {
		return nil, err
	}

	return cfg, nil
}

func durationEnv(key string, dst *time.Duration) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("config: parse %s=%q: %w", key, v, err)
	}
	*dst = d
	return nil
}

func intEnv(key string, dst *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("config: parse %s=%q: %w", key, v, err)
	}
	*dst = n
	return nil
}
