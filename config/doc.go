// Package config loads configuration for streamkit binaries.
//
// Values are layered with Viper: defaults, then a YAML file found under
// ./cmd/<service>/config.yml (or given explicitly), then environment
// variables (a .env file is loaded first via godotenv), then command-line
// flags that were set.
//
// # Usage
//
//	var cfg AppConfig
//	err := config.Load("streams-demo", &cfg,
//	    config.WithFlags(flags, map[string]string{"workers": "demo.workers"}))
//
// Environment variables map onto nested keys by splitting on underscores,
// e.g. DEMO_WORKERS sets demo.workers and LOGGING_LEVEL sets logging.level.
package config
