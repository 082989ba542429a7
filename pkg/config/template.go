package config

// Template returns a commented starter configuration file.
func Template() []byte {
	return []byte(`# syntree configuration

# Log verbosity: debug, info, warn, error.
log_level: info

# Colorize output: auto, always, never.
color: auto

# Tree traversal tuning.
navigation:
  # Child count at which sibling lookup switches from a linear scan to a
  # binary search. 0 keeps the built-in default.
  sibling_search_threshold: 0

# Glob patterns for files to skip during checking.
ignore: []
`)
}
