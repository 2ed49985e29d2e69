package logger

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum level (debug, info, warn, error).
	Level string `mapstructure:"level" default:"info"`
	// Format is the encoding (json, console).
	Format string `mapstructure:"format" default:"console"`
	// File is an optional extra output path. "{ts}" is replaced by the start
	// time, e.g. "logs/reconcile_{ts}.log".
	File string `mapstructure:"file" default:""`
}
