package app

// Config is the process configuration, filled from CLI flags.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
	// LoadoutPath points to a YAML or JSON loadout file. Empty means the
	// built-in loadouts.
	LoadoutPath string
}
