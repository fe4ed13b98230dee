// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package config loads the explorer's runtime configuration.
//
// Configuration comes from three layers, later layers winning: built-in
// defaults, an optional YAML file, and environment variables. The result
// is validated once; an invalid configuration is fatal at startup.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/AleutianAI/SocialExplorer/pkg/logging"
	"github.com/AleutianAI/SocialExplorer/services/explorer/telemetry"
	"github.com/AleutianAI/SocialExplorer/services/explorer/traverse"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables read by Load.
const (
	EnvPort      = "EXPLORER_PORT"
	EnvGraphFile = "EXPLORER_GRAPH_FILE"
	EnvLogLevel  = "EXPLORER_LOG_LEVEL"
	EnvGinMode   = "GIN_MODE"
)

// ErrInvalidConfig is returned when configuration fails to parse or validate.
var ErrInvalidConfig = errors.New("invalid configuration")

// configValidate is the validator instance for configuration structs.
var configValidate *validator.Validate

func init() {
	configValidate = validator.New(validator.WithRequiredStructEnabled())
	if err := configValidate.RegisterValidation("loglevel", validateLogLevel); err != nil {
		panic("config: register loglevel validation: " + err.Error())
	}
}

// validateLogLevel accepts any name logging.ParseLevel understands.
func validateLogLevel(fl validator.FieldLevel) bool {
	_, err := logging.ParseLevel(fl.Field().String())
	return err == nil
}

// Config is the complete runtime configuration.
type Config struct {
	Server    ServerConfig     `yaml:"server"`
	Graph     GraphConfig      `yaml:"graph"`
	Traversal TraversalConfig  `yaml:"traversal"`
	Logging   LoggingConfig    `yaml:"logging"`
	Telemetry telemetry.Config `yaml:"telemetry"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	// Port is the TCP port to listen on.
	Port int `yaml:"port" validate:"min=1,max=65535"`

	// GinMode is passed to gin.SetMode.
	GinMode string `yaml:"gin_mode" validate:"oneof=debug release test"`

	// CORSOrigins lists allowed origins. "*" allows any origin.
	CORSOrigins []string `yaml:"cors_origins" validate:"dive,required"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"gt=0"`
}

// GraphConfig selects the social graph to serve.
type GraphConfig struct {
	// File is a YAML or JSON graph document. Empty means the built-in network.
	File string `yaml:"file"`

	// MaxNodes caps the number of members accepted at load. Zero keeps the
	// store default.
	MaxNodes int `yaml:"max_nodes" validate:"min=0"`
}

// TraversalConfig bounds traversal requests.
type TraversalConfig struct {
	// DefaultCycleQuota is used when a cycle request names no quota.
	DefaultCycleQuota int `yaml:"default_cycle_quota" validate:"min=1"`

	// MaxCycleQuota is the largest quota a request may ask for.
	MaxCycleQuota int `yaml:"max_cycle_quota" validate:"gtefield=DefaultCycleQuota"`
}

// LoggingConfig configures pkg/logging.
type LoggingConfig struct {
	Level  string `yaml:"level" validate:"loglevel"`
	JSON   bool   `yaml:"json"`
	LogDir string `yaml:"log_dir"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:            3001,
			GinMode:         "release",
			CORSOrigins:     []string{"*"},
			ShutdownTimeout: 10 * time.Second,
		},
		Traversal: TraversalConfig{
			DefaultCycleQuota: traverse.DefaultCycleQuota,
			MaxCycleQuota:     100,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Telemetry: telemetry.DefaultConfig(),
	}
}

// Load builds the configuration from defaults, an optional file and the
// environment.
//
// Description:
//
//	When path is non-empty the file must exist and decode cleanly; unknown
//	keys are rejected so typos surface at startup. Fields absent from the
//	file keep their defaults. Environment variables are applied last.
//
// Inputs:
//
//	path - YAML config file, or "" for defaults plus environment.
//
// Outputs:
//
//	Config - The validated configuration.
//	error - Wraps ErrInvalidConfig on decode or validation failure.
//
// Example:
//
//	cfg, err := config.Load(configPath)
//	if err != nil {
//	    return fmt.Errorf("load config: %w", err)
//	}
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", path, err)
		}
		if err := decode(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadEnvFile loads KEY=VALUE pairs from a dotenv file into the process
// environment. Variables that are already set keep their values.
//
// Call before Load so the file feeds the environment overrides.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

// decode strictly unmarshals YAML over cfg.
func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// applyEnv overlays environment variables on cfg.
func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a port number", ErrInvalidConfig, EnvPort, v)
		}
		cfg.Server.Port = port
	}
	if v := os.Getenv(EnvGraphFile); v != "" {
		cfg.Graph.File = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv(EnvGinMode); v != "" {
		cfg.Server.GinMode = v
	}
	cfg.Telemetry.ApplyEnv()
	return nil
}

// Validate checks every field against its constraints.
func (c Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// LogLevel returns the parsed logging level. Call after Validate.
func (c Config) LogLevel() logging.Level {
	level, _ := logging.ParseLevel(c.Logging.Level)
	return level
}

// Addr returns the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Server.Port)
}
