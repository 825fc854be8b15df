package configloader

import (
	"os"

	"github.com/yaklabco/mdindex/pkg/config"
)

// envVarPrefix is the prefix for all mdindex environment variables.
const envVarPrefix = "MDINDEX_"

// LoadFromEnv applies environment variable overrides to the configuration.
// Variables are prefixed with MDINDEX_ (e.g. MDINDEX_TITLE_MODE). Unset or
// empty variables leave the configuration untouched.
func LoadFromEnv(cfg *config.Config) {
	if cfg == nil {
		return
	}

	setters := map[string]func(string){
		"NOTES_DIR":  func(v string) { cfg.NotesDir = v },
		"NAV_FILE":   func(v string) { cfg.NavFile = v },
		"NAV_GROUP":  func(v string) { cfg.NavGroup = v },
		"TITLE_MODE": func(v string) { cfg.TitleMode = config.TitleMode(v) },
	}

	for suffix, set := range setters {
		if value := os.Getenv(envVarPrefix + suffix); value != "" {
			set(value)
		}
	}
}
