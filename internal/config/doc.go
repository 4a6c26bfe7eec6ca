// Package config defines the application configuration structures and
// loading logic. Configuration comes from environment variables with the
// TEAMPLAN_ prefix, optionally layered over a config.yaml file, and is
// validated before use.
package config
