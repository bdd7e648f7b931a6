// Package config provides configuration types for the erasure-lab tool.
package config

// Config holds the configuration for a demonstration run.
type Config struct {
	// StringValues are the declared-type values appended through the
	// type-checked insertion path, in order.
	StringValues []string

	// ForeignValue is the numeric value inserted through the unsafe
	// storage handle.
	ForeignValue int64

	// ForeignIndex is the number of string values appended before the
	// foreign insert happens; it is also the logical position of the
	// foreign element in the populated sequence.
	ForeignIndex int

	// Verbose enables verbose output.
	Verbose bool
}

// DefaultConfig returns a Config with default settings.
func DefaultConfig() *Config {
	return &Config{
		StringValues: []string{
			"string value 1",
			"string value 2",
			"string value 3",
			"string value 4",
			"string value 5",
		},
		ForeignValue: 5,
		ForeignIndex: 3,
		Verbose:      false,
	}
}
