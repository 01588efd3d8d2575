package app

import "fmt"

// Commands the app can execute against a loaded registry.
const (
	CommandList    = "list"
	CommandShow    = "show"
	CommandResolve = "resolve"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	MaterialsPath string // file or directory of .hcl material documents

	Command   string
	Key       string   // material key, for show/resolve
	Property  string   // property name, for resolve
	Thickness *float64 // optional thickness, for resolve of banded properties

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config value and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.MaterialsPath == "" {
		return nil, fmt.Errorf("MaterialsPath is a required configuration field and cannot be empty")
	}

	switch cfg.Command {
	case CommandList:
	case CommandShow:
		if cfg.Key == "" {
			return nil, fmt.Errorf("the %s command requires a material key", CommandShow)
		}
	case CommandResolve:
		if cfg.Key == "" || cfg.Property == "" {
			return nil, fmt.Errorf("the %s command requires a material key and a property name", CommandResolve)
		}
	default:
		return nil, fmt.Errorf("unknown command %q", cfg.Command)
	}

	return &cfg, nil
}
