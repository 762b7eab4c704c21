package cli

import (
	"github.com/BurntSushi/toml"
)

// configFile is looked up in the working directory; command-line
// arguments always override what it sets.
const configFile = "domega.toml"

// config carries the optional defaults a domega.toml may provide.
type config struct {
	// Threads caps the worker count when no thread argument is given.
	Threads int `toml:"threads"`

	// Verbose enables debug-level diagnostics and the adjacency and
	// ordering dumps.
	Verbose bool `toml:"verbose"`
}

// loadConfig reads path if it exists. A missing or unreadable file just
// yields the zero config: the file is a convenience, never a requirement.
func loadConfig(path string) config {
	var cfg config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return config{}
	}

	return cfg
}
