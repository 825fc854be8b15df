package configloader

import "github.com/yaklabco/mdindex/pkg/config"

// merge combines two configurations, with override taking precedence over
// base. Scalars overwrite when non-zero; the descriptions map is merged
// key by key with override winning. Unset values in override never clear
// values in base.
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.NotesDir != "" {
		result.NotesDir = override.NotesDir
	}
	if override.NavFile != "" {
		result.NavFile = override.NavFile
	}
	if override.NavGroup != "" {
		result.NavGroup = override.NavGroup
	}
	if override.LandingFile != "" {
		result.LandingFile = override.LandingFile
	}
	if override.AllNotesFile != "" {
		result.AllNotesFile = override.AllNotesFile
	}
	if override.TitleMode != "" {
		result.TitleMode = override.TitleMode
	}

	// Check can only be switched on by an override (CLI flag); a config
	// file cannot unset it.
	if override.Check {
		result.Check = true
	}

	result.Descriptions = mergeDescriptions(base.Descriptions, override.Descriptions)

	return &result
}

// mergeDescriptions merges the description maps, override winning per key.
func mergeDescriptions(base, override map[string]string) map[string]string {
	if len(base) == 0 && len(override) == 0 {
		return map[string]string{}
	}

	merged := make(map[string]string, len(base)+len(override))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range override {
		merged[k] = v
	}
	return merged
}
