// Package config loads the suite and server settings from the environment.
//
// An optional .env file is read first; variables already set in the process
// environment win over it. Values are then parsed into typed structs with
// caarlos0/env.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Suite configures the API test suites and the token generator.
type Suite struct {
	BaseURL        string        `env:"BASE_URL" envDefault:"https://dummyjson.com"`
	Live           bool          `env:"DUMMYJSON_LIVE" envDefault:"false"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
	RateLimitRPS   float64       `env:"RATE_LIMIT_RPS" envDefault:"5"`
	RateLimitBurst int           `env:"RATE_LIMIT_BURST" envDefault:"5"`
	Username       string        `env:"DUMMYJSON_USERNAME" envDefault:"emilys"`
	Password       string        `env:"DUMMYJSON_PASSWORD" envDefault:"emilyspass"`
	TokenSeed      uint64        `env:"TOKENFAULT_SEED" envDefault:"0"`
	TokenSecret    string        `env:"TOKENFAULT_SECRET" envDefault:"test-secret"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat      string        `env:"LOG_FORMAT" envDefault:"text"`
}

// Server configures the stand-in service.
type Server struct {
	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":8080"`
	GRPCAddr        string        `env:"GRPC_ADDR" envDefault:":9090"`
	JWTSecret       string        `env:"JWT_SECRET,required"`
	AccessTokenTTL  time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"60m"`
	RefreshTokenTTL time.Duration `env:"REFRESH_TOKEN_TTL" envDefault:"720h"`
	ClockSkew       time.Duration `env:"CLOCK_SKEW" envDefault:"60s"`
	DatasetSeed     uint64        `env:"DATASET_SEED" envDefault:"42"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"json"`
}

// Load reads the given .env files (".env" when none are named) into the
// process environment and parses it into cfg. Missing files are ignored.
func Load(cfg any, files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: load %s: %w", f, err)
		}
	}
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config: parse environment: %w", err)
	}
	return nil
}

// LoadSuite returns the suite settings.
func LoadSuite(files ...string) (Suite, error) {
	var cfg Suite
	if err := Load(&cfg, files...); err != nil {
		return Suite{}, err
	}
	return cfg, nil
}

// LoadServer returns the stand-in service settings.
func LoadServer(files ...string) (Server, error) {
	var cfg Server
	if err := Load(&cfg, files...); err != nil {
		return Server{}, err
	}
	return cfg, nil
}

// MustLoadSuite is LoadSuite that panics on failure.
func MustLoadSuite(files ...string) Suite {
	cfg, err := LoadSuite(files...)
	if err != nil {
		panic(err)
	}
	return cfg
}
