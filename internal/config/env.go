package config

import "os"

const envPrefix = "INFERUS_"

// envBindings maps environment variable suffixes to config setters.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envBindings = map[string]func(*Config, string){
	"COLOR":     func(c *Config, v string) { c.Color = ColorMode(v) },
	"LOG_LEVEL": func(c *Config, v string) { c.LogLevel = v },
	"FORMAT":    func(c *Config, v string) { c.Format = OutputFormat(v) },
}

// applyEnv overrides cfg with any INFERUS_* variables that are set and
// non-empty. It returns the names of the variables applied.
func applyEnv(cfg *Config, lookup func(string) (string, bool)) []string {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	var applied []string
	for _, suffix := range []string{"COLOR", "LOG_LEVEL", "FORMAT"} {
		name := envPrefix + suffix
		if value, ok := lookup(name); ok && value != "" {
			envBindings[suffix](cfg, value)
			applied = append(applied, name)
		}
	}
	return applied
}

// EnvVars describes the supported environment variables.
func EnvVars() map[string]string {
	return map[string]string{
		envPrefix + "COLOR":     "Styled output: auto, always or never",
		envPrefix + "LOG_LEVEL": "Log level: debug, info, warn or error",
		envPrefix + "FORMAT":    "Tree output format: text, json or yaml",
	}
}
