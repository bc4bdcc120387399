package main

import (
	"flag"
	"os"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// CLIConfig holds command-line configuration
type CLIConfig struct {
	ProtocolVersion string
	SchemaRoot      string
	LogLevel        string
	LogFormat       string
	ShowVersion     bool
}

func parseFlags() *CLIConfig {
	cfg := &CLIConfig{}

	flag.StringVar(&cfg.ProtocolVersion, "protocol",
		getEnv("OCPP_PROTOCOL", "1.6"),
		"OCPP version: 1.6, 2.0, 2.0.1 (env: OCPP_PROTOCOL)")

	flag.StringVar(&cfg.SchemaRoot, "schema-root",
		getEnv("OCPP_SCHEMA_ROOT", ""),
		"Directory of schema files overriding the built-in set (env: OCPP_SCHEMA_ROOT)")

	flag.StringVar(&cfg.LogLevel, "log-level",
		getEnv("OCPP_LOG_LEVEL", "info"),
		"Log level: debug, info, warn, error (env: OCPP_LOG_LEVEL)")

	flag.StringVar(&cfg.LogFormat, "log-format",
		getEnv("OCPP_LOG_FORMAT", "text"),
		"Log format: json, text (env: OCPP_LOG_FORMAT)")

	flag.BoolVar(&cfg.ShowVersion, "version", false, "Print version and exit")

	flag.Parse()
	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
