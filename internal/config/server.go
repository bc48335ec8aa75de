package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	// DefaultPort is used when PORT is unset or not a valid port number.
	DefaultPort = 3000

	EnvPort      = "PORT"
	EnvAccessLog = "GREETER_ACCESS_LOG"
)

// ParsePort converts a PORT value into a TCP port. An empty value yields
// DefaultPort with no error; an invalid one yields DefaultPort and an error
// describing why the value was ignored.
func ParsePort(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultPort, nil
	}
	port, err := strconv.Atoi(raw)
	if err != nil {
		return DefaultPort, fmt.Errorf("invalid port %q: %w", raw, err)
	}
	if port < 1 || port > 65535 {
		return DefaultPort, fmt.Errorf("port %d out of range 1-65535", port)
	}
	return port, nil
}

// ServerPort returns the port from the PORT environment variable, falling back to DefaultPort.
func ServerPort() int {
	port, _ := ParsePort(os.Getenv(EnvPort))
	return port
}

// AccessLogEnabled reports whether GREETER_ACCESS_LOG turns on request logging.
func AccessLogEnabled() bool {
	on, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(EnvAccessLog)))
	return err == nil && on
}
