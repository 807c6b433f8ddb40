// Package config loads the depviz run configuration.
//
// A configuration is a JSON object (or, for paths ending in .toml, a TOML
// document with the same keys):
//
//	{
//	    "graph_tool_path": "/usr/bin/dot",
//	    "package_name": "Serilog",
//	    "output_path": "serilog.dot",
//	    "repository_url": "https://api.nuget.org/v3/registration5-gz-semver2"
//	}
//
// Unknown keys are ignored. Errors carry the FILE_NOT_FOUND or
// INVALID_CONFIG codes from pkg/errors.
package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	pkgerrors "github.com/matzehuels/depviz/pkg/errors"
	"github.com/matzehuels/depviz/pkg/integrations/nuget"
)

// DefaultCacheTTL is how long cached registry responses stay valid.
const DefaultCacheTTL = 24 * time.Hour

// Config is one run's configuration.
type Config struct {
	GraphToolPath string `json:"graph_tool_path" toml:"graph_tool_path"`
	PackageName   string `json:"package_name" toml:"package_name"`
	OutputPath    string `json:"output_path" toml:"output_path"`
	RepositoryURL string `json:"repository_url" toml:"repository_url"`
	MaxDepth      int    `json:"max_depth" toml:"max_depth"`
	Strict        bool   `json:"strict" toml:"strict"`
	Cache         string `json:"cache" toml:"cache"`
	CacheTTL      string `json:"cache_ttl" toml:"cache_ttl"`

	ttl time.Duration
}

// TTL returns the parsed cache_ttl.
func (c *Config) TTL() time.Duration {
	if c.ttl <= 0 {
		return DefaultCacheTTL
	}
	return c.ttl
}

// Load reads, defaults and validates the configuration at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, pkgerrors.Wrap(pkgerrors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return nil, pkgerrors.Wrap(pkgerrors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	return Parse(data, filepath.Ext(path))
}

// Parse decodes a configuration. ext selects the format: ".toml" for TOML,
// anything else for JSON.
func Parse(data []byte, ext string) (*Config, error) {
	var cfg Config
	if strings.EqualFold(ext, ".toml") {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.ErrCodeInvalidConfig, err, "parse TOML config")
		}
	} else {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.ErrCodeInvalidConfig, err, "parse JSON config")
		}
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	c.PackageName = strings.TrimSpace(c.PackageName)
	if c.RepositoryURL == "" {
		c.RepositoryURL = nuget.DefaultBaseURL
	}
}

// Validate checks required fields and parses derived values.
func (c *Config) Validate() error {
	if c.PackageName == "" {
		return pkgerrors.New(pkgerrors.ErrCodeInvalidConfig, "package_name is required")
	}
	if err := pkgerrors.ValidatePackageName(c.PackageName); err != nil {
		return pkgerrors.Wrap(pkgerrors.ErrCodeInvalidConfig, err, "package_name")
	}
	if c.OutputPath == "" {
		return pkgerrors.New(pkgerrors.ErrCodeInvalidConfig, "output_path is required")
	}
	if err := pkgerrors.ValidateURL(c.RepositoryURL); err != nil {
		return pkgerrors.Wrap(pkgerrors.ErrCodeInvalidConfig, err, "repository_url")
	}
	if c.MaxDepth < 0 {
		return pkgerrors.New(pkgerrors.ErrCodeInvalidConfig, "max_depth must not be negative, got %d", c.MaxDepth)
	}

	c.ttl = DefaultCacheTTL
	if c.CacheTTL != "" {
		ttl, err := time.ParseDuration(c.CacheTTL)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.ErrCodeInvalidConfig, err, "cache_ttl")
		}
		if ttl <= 0 {
			return pkgerrors.New(pkgerrors.ErrCodeInvalidConfig, "cache_ttl must be positive, got %s", c.CacheTTL)
		}
		c.ttl = ttl
	}
	return nil
}
