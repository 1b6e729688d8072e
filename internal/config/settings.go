package config

import "spur/internal/support"

const (
	defaultLogLevel      = "info"
	defaultVerifyWorkers = 8
	defaultGeoLiteDir    = "data"
)

// Settings holds the environment-derived configuration of the CLI. The
// codec itself takes no configuration.
type Settings struct {
	// LogLevel is a charmbracelet/log level name (debug, info, warn, error).
	LogLevel string

	// VerifyWorkers caps concurrent file decodes during verify runs.
	VerifyWorkers int

	// GeoLiteDir holds the GeoLite2 .mmdb files for geocheck runs.
	GeoLiteDir string
}

// Load reads the SPUR_* environment variables, falling back to defaults.
func Load() Settings {
	workers := support.GetEnvInt("SPUR_VERIFY_WORKERS", defaultVerifyWorkers)
	if workers < 1 {
		workers = defaultVerifyWorkers
	}

	return Settings{
		LogLevel:      support.GetEnv("SPUR_LOG_LEVEL", defaultLogLevel),
		VerifyWorkers: workers,
		GeoLiteDir:    support.GetEnv("SPUR_GEOLITE_DIR", defaultGeoLiteDir),
	}
}
