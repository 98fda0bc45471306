// Package config loads the application configuration from the environment.
//
// Values come from environment variables (optionally seeded from a .env file)
// and fall back to defaults matching a local MySQL setup. The theme color is
// checked against the supported set at load time so that a bad APP_COLOR
// stops the process before any listener is bound.
package config
