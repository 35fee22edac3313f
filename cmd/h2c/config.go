package main

import (
	"fmt"
	"os"
)

// Config holds the CLI's run parameters, following the teacher's
// provers/types/config.go pattern: environment-variable defaults
// overridden by a small hand-rolled "--flag value" scan.
type Config struct {
	Suite   string
	DSTTag  string
	Mode    string
	Message string
}

// NewConfig builds a Config from environment defaults and args (normally
// os.Args[1:]).
func NewConfig(args ...string) *Config {
	cfg := Config{
		Suite:   getEnv("H2C_SUITE", "xmd-sha256"),
		DSTTag:  getEnv("H2C_DST_TAG", "H2CDEMO"),
		Mode:    getEnv("H2C_MODE", "ro"),
		Message: getEnv("H2C_MESSAGE", ""),
	}

	for i := 0; i < len(args); i++ {
		if len(args) <= i+1 {
			panic(fmt.Errorf("missing argument for %s", args[i]))
		}
		switch args[i] {
		case "--suite":
			cfg.Suite = args[i+1]
			i++
		case "--dst-tag":
			cfg.DSTTag = args[i+1]
			i++
		case "--mode":
			cfg.Mode = args[i+1]
			i++
		case "--message":
			cfg.Message = args[i+1]
			i++
		}
	}

	return &cfg
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
