package zonefile

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds parser defaults for the CLI tools, loaded from a TOML
// file rather than flags alone (grounded in ChristianF88-cidrx's
// config.go, the only retrieved repo that configures its tools this
// way).
type Config struct {
	Origin       string `toml:"origin"`
	DefaultTTL   uint32 `toml:"default_ttl"`
	DefaultClass string `toml:"default_class"`
	NoIncludes   bool   `toml:"no_includes"`
	IncludeLimit uint32 `toml:"include_limit"`
	PrettyTTLs   bool   `toml:"pretty_ttls"`
	Secondary    bool   `toml:"secondary"`
}

// LoadConfig reads and decodes a TOML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.DefaultClass == "" {
		cfg.DefaultClass = "IN"
	}
	return &cfg, nil
}
