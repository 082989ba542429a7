package configloader

import "github.com/yaklabco/syntree/pkg/config"

// merge combines two configurations, with override taking precedence over
// base. Unset (zero) values in override do not override values in base;
// slices replace the base slice entirely when non-nil.
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.LogLevel != "" {
		result.LogLevel = override.LogLevel
	}
	if override.Color != "" {
		result.Color = override.Color
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}
	if override.Navigation.SiblingSearchThreshold != 0 {
		result.Navigation.SiblingSearchThreshold = override.Navigation.SiblingSearchThreshold
	}
	if override.Ignore != nil {
		result.Ignore = override.Ignore
	}

	return &result
}
