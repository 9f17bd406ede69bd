// Package config provides configuration loading and validation for the
// flipper-raw-rfid command line tool. It handles YAML-based configuration
// with struct validation and falls back to defaults when no configuration
// file exists.
package config
