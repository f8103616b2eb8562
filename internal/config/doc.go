// Package config loads and validates application configuration.
//
// Values come from, in increasing order of precedence: built-in defaults,
// an optional config.yaml in the working directory, an optional .env file,
// and SHELF_-prefixed environment variables.
package config
