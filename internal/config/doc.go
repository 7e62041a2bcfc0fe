// Package config defines the application configuration structure and
// provides loading from environment variables and optional config files.
package config
