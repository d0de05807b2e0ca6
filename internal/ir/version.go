package ir

// Version constants for the recording format and the engine.
const (
	// FormatVersion is the recording schema version.
	FormatVersion = "1"

	// EngineVersion is the sortscope engine version.
	EngineVersion = "0.1.0"
)
