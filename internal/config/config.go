package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"vless2json/internal/compiler"
)

// DefaultPath is probed when no --config flag is given; a missing file at
// this path is not an error, the defaults just apply.
const DefaultPath = "vless2json.yaml"

type Config struct {
	Proxies  ProxiesConfig `yaml:"proxies"`
	Listen   string        `yaml:"listen"`
	Strict   bool          `yaml:"strict"`
	LogLevel string        `yaml:"log_level"`
	Output   string        `yaml:"output"`
	Routing  RoutingConfig `yaml:"routing"`
}

type ProxiesConfig struct {
	HTTPPort  int `yaml:"http_port"`
	SocksPort int `yaml:"socks_port"`
}

type RoutingConfig struct {
	BlockPrivate     bool     `yaml:"block_private"`
	BittorrentDirect bool     `yaml:"bittorrent_direct"`
	ProxyDomains     []string `yaml:"proxy_domains"`
	DirectDomains    []string `yaml:"direct_domains"`
	DirectGeoIPs     []string `yaml:"direct_geoips"`
}

// Load reads the settings file, layering it over the defaults. CLI flags
// override the result at the command layer, never the other way around.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse settings yaml: %w", err)
	}

	return cfg, nil
}

func defaults() *Config {
	opts := compiler.DefaultOptions()
	return &Config{
		Proxies: ProxiesConfig{
			HTTPPort:  compiler.DefaultHTTPPort,
			SocksPort: compiler.DefaultSocksPort,
		},
		Listen:   opts.Listen,
		LogLevel: opts.LogLevel,
		Output:   "config.json",
		Routing: RoutingConfig{
			BlockPrivate:     opts.Routing.BlockPrivate,
			BittorrentDirect: opts.Routing.BittorrentDirect,
			ProxyDomains:     opts.Routing.ProxyDomains,
			DirectDomains:    opts.Routing.DirectDomains,
			DirectGeoIPs:     opts.Routing.DirectGeoIPs,
		},
	}
}

// Options translates file settings into compiler options. The strict flag
// may still be forced on by the CLI afterwards.
func (c *Config) Options() compiler.Options {
	return compiler.Options{
		Listen:   c.Listen,
		LogLevel: c.LogLevel,
		Strict:   c.Strict,
		Routing: compiler.RoutingOptions{
			BlockPrivate:     c.Routing.BlockPrivate,
			BittorrentDirect: c.Routing.BittorrentDirect,
			ProxyDomains:     c.Routing.ProxyDomains,
			DirectDomains:    c.Routing.DirectDomains,
			DirectGeoIPs:     c.Routing.DirectGeoIPs,
		},
	}
}
