// Package config reads the command line tool's settings from the
// environment and optional .env files.
package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Environment variables.
const (
	EnvMeshCells   = "FASTENERS_MESH_CELLS"
	EnvCurveFacets = "FASTENERS_CURVE_FACETS"
	EnvWorkers     = "FASTENERS_WORKERS"
	EnvLogLevel    = "FASTENERS_LOG_LEVEL"
)

// Config holds the tool settings.
type Config struct {
	// MeshCells is the marching cubes resolution along a solid's longest side.
	MeshCells int `validate:"min=2"`
	// CurveFacets is the number of segments per quarter turn of profile curves.
	CurveFacets int `validate:"min=1"`
	// Workers bounds batch generation concurrency.
	Workers  int    `validate:"min=1"`
	LogLevel string `validate:"oneof=trace debug info warn error fatal panic disabled"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		MeshCells:   64,
		CurveFacets: 8,
		Workers:     runtime.NumCPU(),
		LogLevel:    "info",
	}
}

// Load reads the settings. Values come from the process environment first,
// then from files. Without files a .env in the working directory is used
// if present.
func Load(files ...string) (Config, error) {
	fileEnv := map[string]string{}
	if len(files) > 0 {
		m, err := godotenv.Read(files...)
		if err != nil {
			return Config{}, fmt.Errorf("config: %w", err)
		}
		fileEnv = m
	} else if m, err := godotenv.Read(); err == nil {
		fileEnv = m
	}
	return parse(func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileEnv[key]
		return v, ok
	})
}

func parse(lookup func(string) (string, bool)) (Config, error) {
	c := Default()
	for _, v := range []struct {
		key string
		dst *int
	}{
		{EnvMeshCells, &c.MeshCells},
		{EnvCurveFacets, &c.CurveFacets},
		{EnvWorkers, &c.Workers},
	} {
		s, ok := lookup(v.key)
		if !ok || s == "" {
			continue
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", v.key, err)
		}
		*v.dst = n
	}
	if s, ok := lookup(EnvLogLevel); ok && s != "" {
		c.LogLevel = s
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks every setting is in range.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Level returns the zerolog level of LogLevel.
func (c Config) Level() zerolog.Level {
	l, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return l
}
