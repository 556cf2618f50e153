// Package config carga la configuración del servicio: defaults, archivo YAML
// opcional y variables de entorno (en ese orden de prioridad creciente).
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	DB      DBConfig      `yaml:"db"`
	Log     LogConfig     `yaml:"log"`
	Growth  GrowthConfig  `yaml:"growth"`
	Feeding FeedingConfig `yaml:"feeding"`
}

type HTTPConfig struct {
	Addr         string        `yaml:"addr"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DBConfig: DSN vacío = repos in-memory.
type DBConfig struct {
	DSN string `yaml:"dsn"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	App    string `yaml:"app"`
}

type GrowthConfig struct {
	// Semanas de proyección cuando el request no trae horizon_weeks.
	DefaultHorizonWeeks int `yaml:"default_horizon_weeks"`
}

type FeedingConfig struct {
	// GuidesPath reemplaza las guías embebidas. Vacío = embebidas.
	GuidesPath string `yaml:"guides_path"`
}

func Default() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Addr:         ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
			App:    "puppy-growth",
		},
		Growth: GrowthConfig{
			DefaultHorizonWeeks: 12,
		},
	}
}

// Load lee path (si no es vacío) sobre los defaults y aplica el entorno.
func Load(path string) (*Config, error) {
	cfg := Default()

	if strings.TrimSpace(path) != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// ApplyEnv pisa los valores con PORT, DB_DSN, LOG_LEVEL, LOG_FORMAT, APP_NAME,
// FEEDING_GUIDES_PATH y GROWTH_HORIZON_WEEKS.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	get := func(k string) (string, bool) {
		v, ok := lookup(k)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get("PORT"); ok {
		c.HTTP.Addr = ":" + strings.TrimPrefix(v, ":")
	}
	if v, ok := get("DB_DSN"); ok {
		c.DB.DSN = v
	}
	if v, ok := get("LOG_LEVEL"); ok {
		c.Log.Level = v
	}
	if v, ok := get("LOG_FORMAT"); ok {
		c.Log.Format = v
	}
	if v, ok := get("APP_NAME"); ok {
		c.Log.App = v
	}
	if v, ok := get("FEEDING_GUIDES_PATH"); ok {
		c.Feeding.GuidesPath = v
	}
	if v, ok := get("GROWTH_HORIZON_WEEKS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("GROWTH_HORIZON_WEEKS: %w", err)
		}
		c.Growth.DefaultHorizonWeeks = n
	}
	return nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.HTTP.Addr) == "" {
		return errors.New("http.addr is required")
	}
	if c.HTTP.ReadTimeout <= 0 || c.HTTP.WriteTimeout <= 0 {
		return errors.New("http timeouts must be positive")
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json", "":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	if c.Growth.DefaultHorizonWeeks < 0 || c.Growth.DefaultHorizonWeeks > 104 {
		return fmt.Errorf("growth.default_horizon_weeks must be between 0 and 104")
	}
	return nil
}
