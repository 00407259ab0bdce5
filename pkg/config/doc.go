// Package config loads command-line defaults for the qrgen binary from the
// environment, optionally seeded from one or more .env files.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//	cfg, err := config.Load()              // default .env, if present
//	cfg, err := config.Load("./qrgen.env") // explicit files must exist
//
// Values already present in the process environment win over .env files.
// Library packages never read configuration; only cmd/ does.
//
// # Error Handling
//
//   - ErrLoadingEnvFile – an explicitly requested .env file could not be read.
//   - ErrParsingConfig  – environment values could not be parsed.
//   - ErrInvalidConfig  – parsed values are out of range.
package config
