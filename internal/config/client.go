package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ClientConfig holds the target used by "greeter health".
type ClientConfig struct {
	ServerURL string `json:"server_url"`
}

const (
	clientConfigFile = "client.json"

	EnvServer = "GREETER_SERVER"
)

// LoadClientConfig loads client config from ~/.greeter/client.json and env (env overrides).
// With neither set, the server is assumed to run locally on ServerPort().
func LoadClientConfig() (*ClientConfig, error) {
	path := filepath.Join(GetConfigDir(), clientConfigFile)
	cfg := &ClientConfig{}
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	if err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}
	if env := os.Getenv(EnvServer); env != "" {
		cfg.ServerURL = env
	}
	if cfg.ServerURL == "" {
		cfg.ServerURL = "http://localhost:" + strconv.Itoa(ServerPort())
	}
	cfg.ServerURL = strings.TrimSuffix(cfg.ServerURL, "/")
	return cfg, nil
}

// SaveClientConfig writes client config to ~/.greeter/client.json.
func SaveClientConfig(cfg *ClientConfig) error {
	dir := GetConfigDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, clientConfigFile), data, 0600)
}

// GreetingURL returns the URL of the greeting route on the configured server.
func (c *ClientConfig) GreetingURL() string {
	return strings.TrimSuffix(c.ServerURL, "/") + "/"
}
