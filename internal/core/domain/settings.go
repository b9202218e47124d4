package domain

// SettingsFileName is the conventional name of the settings file.
const SettingsFileName = "stale.yaml"

// Default signal specifiers for the hook.
const (
	// DefaultTrigger is the inbound notification that starts a change check.
	DefaultTrigger = "SIGHUP"
	// DefaultReaction is the signal raised when changed files are found.
	DefaultReaction = "SIGTERM"
)

// HookSettings configures the signal hook.
type HookSettings struct {
	// Trigger is the signal specifier the hook listens for.
	Trigger string
	// Reaction is the signal specifier raised when files changed.
	Reaction string
	// Verbose enables the message describing the action taken.
	Verbose bool
}

// Settings is the loaded configuration for a tracked process.
type Settings struct {
	// Track lists glob patterns of extra files to merge into the baseline,
	// such as templates or config files.
	Track []string
	// Hook configures the signal hook.
	Hook HookSettings
}

// WithDefaults returns a copy of the settings with empty fields replaced by
// the package defaults.
func (s Settings) WithDefaults() Settings {
	if s.Hook.Trigger == "" {
		s.Hook.Trigger = DefaultTrigger
	}
	if s.Hook.Reaction == "" {
		s.Hook.Reaction = DefaultReaction
	}
	return s
}
