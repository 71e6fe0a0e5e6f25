package log

// ZapConfig configures the zap-backed logger.
type ZapConfig struct {
	// Level is the minimum level to emit: debug, info, warn, error.
	Level string
	// Mode selects presets: development or production.
	Mode string
	// Encoding is console or json.
	Encoding string
	// ColorEnabled colorizes levels in console encoding.
	ColorEnabled bool
}
