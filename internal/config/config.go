// Package config provides configuration helpers for go-skull commands.
package config

import "os"

// Defaults for the command link and servo controller connection.
const (
	DefaultListenAddr  = ":8090"
	DefaultSerialPort  = "/dev/ttyUSB0"
	DefaultSerialBaud  = 9600
	DefaultCommandPath = "/v1/command"
)

// ListenAddr returns the command-link listen address from SKULL_ADDR,
// falling back to the default if not set.
func ListenAddr() string {
	if addr := os.Getenv("SKULL_ADDR"); addr != "" {
		return addr
	}
	return DefaultListenAddr
}

// SerialPort returns the Maestro serial device from SKULL_SERIAL,
// falling back to the default if not set.
func SerialPort() string {
	if dev := os.Getenv("SKULL_SERIAL"); dev != "" {
		return dev
	}
	return DefaultSerialPort
}

// LogLevel returns the log level from SKULL_LOG_LEVEL, or "info".
func LogLevel() string {
	if lvl := os.Getenv("SKULL_LOG_LEVEL"); lvl != "" {
		return lvl
	}
	return "info"
}
