package shared

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file,
// optionally overridden by environment variables. It is built once at
// startup and passed read-only to every component.
type Config struct {
	Spotify SpotifyConfig `toml:"spotify"`
	Client  ClientConfig  `toml:"client"`
	Server  ServerConfig  `toml:"server"`
}

// SpotifyConfig contains Spotify API credentials. The client secret is only
// ever sent to the provider's token endpoint as a basic-auth header.
type SpotifyConfig struct {
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`
	RedirectURI  string `toml:"redirect_uri"`
}

// ClientConfig describes the browser application the relay serves. Origin is
// used for CORS and for post-auth redirects.
type ClientConfig struct {
	Origin string `toml:"origin"`
}

// ServerConfig contains HTTP server settings. TrustProxyHeaders must stay
// off unless a trusted reverse proxy sets X-Forwarded-For, since direct
// callers can forge it.
type ServerConfig struct {
	Host              string `toml:"host"`
	Port              int    `toml:"port"`
	TrustProxyHeaders bool   `toml:"trust_proxy_headers"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingConfig, err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ApplyEnv overlays environment variables onto the config. Unset variables
// leave the corresponding field untouched.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("SPOTIFY_CLIENT_ID"); v != "" {
		c.Spotify.ClientID = v
	}
	if v := os.Getenv("SPOTIFY_CLIENT_SECRET"); v != "" {
		c.Spotify.ClientSecret = v
	}
	if v := os.Getenv("SPOTIFY_REDIRECT_URI"); v != "" {
		c.Spotify.RedirectURI = v
	}
	if v := os.Getenv("CLIENT_ORIGIN"); v != "" {
		c.Client.Origin = v
	}
	if v := os.Getenv("HOST"); v != "" {
		c.Server.Host = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 {
			c.Server.Port = port
		}
	}
	if v := os.Getenv("TRUST_PROXY_HEADERS"); v != "" {
		if trust, err := strconv.ParseBool(v); err == nil {
			c.Server.TrustProxyHeaders = trust
		}
	}
}

// Addr returns the host:port address the HTTP server listens on.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
