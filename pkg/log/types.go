package log

// ZapConfig configures the zap-backed logger.
type ZapConfig struct {
	Level        string // debug, info, warn, error
	Mode         string // "production" or anything else for development
	Encoding     string // "console" or "json"
	ColorEnabled bool
}

const (
	ModeProduction  = "production"
	EncodingConsole = "console"
	EncodingJSON    = "json"
)
