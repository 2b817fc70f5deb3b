package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/wmfl-standings/internal/platform/logging"
)

const (
	DefaultTournamentID     = 1056456
	DefaultSeason           = "2024/2025"
	DefaultWMFLURLTemplate  = "https://wmfl.ru/tournament/%d/standings"
	DefaultWMFLUserAgent    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	defaultSyncLogListLimit = 50
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                     string
	ServiceName                string
	ServiceVersion             string
	HTTPAddr                   string
	DBURL                      string
	DBDisablePreparedBinary    bool
	CORSAllowedOrigins         []string
	ReadTimeout                time.Duration
	WriteTimeout               time.Duration
	PprofEnabled               bool
	PprofAddr                  string
	UptraceEnabled             bool
	UptraceDSN                 string
	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
	WMFLURLTemplate            string
	WMFLTimeout                time.Duration
	WMFLUserAgent              string
	WMFLInsecureTLS            bool
	WMFLCircuitEnabled         bool
	WMFLCircuitFailureCount    int
	WMFLCircuitOpenTimeout     time.Duration
	DefaultTournamentID        int64
	DefaultSeason              string
	SyncMaxWorkers             int
	SyncLogLimit               int
	LogLevel                   logging.Level
	LogFile                    string
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	readTimeout, err := time.ParseDuration(getEnv("READ_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("WRITE_TIMEOUT", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse WRITE_TIMEOUT: %w", err)
	}

	dbDisablePreparedBinary, err := strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	wmflURLTemplate := strings.TrimSpace(getEnv("WMFL_URL_TEMPLATE", DefaultWMFLURLTemplate))
	if strings.Count(wmflURLTemplate, "%d") != 1 {
		return Config{}, fmt.Errorf("WMFL_URL_TEMPLATE must contain exactly one %%d placeholder")
	}
	wmflTimeout, err := time.ParseDuration(getEnv("WMFL_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse WMFL_TIMEOUT: %w", err)
	}
	if wmflTimeout <= 0 {
		return Config{}, fmt.Errorf("WMFL_TIMEOUT must be > 0")
	}
	wmflInsecureTLS, err := strconv.ParseBool(getEnv("WMFL_INSECURE_TLS", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse WMFL_INSECURE_TLS: %w", err)
	}
	wmflCircuitEnabled, err := strconv.ParseBool(getEnv("WMFL_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse WMFL_CIRCUIT_ENABLED: %w", err)
	}
	wmflCircuitFailureCount, err := getEnvAsInt("WMFL_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse WMFL_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if wmflCircuitFailureCount <= 0 {
		return Config{}, fmt.Errorf("WMFL_CIRCUIT_FAILURE_COUNT must be > 0")
	}
	wmflCircuitOpenTimeout, err := time.ParseDuration(getEnv("WMFL_CIRCUIT_OPEN_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse WMFL_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if wmflCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("WMFL_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}

	defaultTournamentID, err := getEnvAsInt("DEFAULT_TOURNAMENT_ID", DefaultTournamentID)
	if err != nil {
		return Config{}, fmt.Errorf("parse DEFAULT_TOURNAMENT_ID: %w", err)
	}
	if defaultTournamentID <= 0 {
		return Config{}, fmt.Errorf("DEFAULT_TOURNAMENT_ID must be > 0")
	}

	syncMaxWorkers, err := getEnvAsInt("SYNC_MAX_WORKERS", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse SYNC_MAX_WORKERS: %w", err)
	}
	if syncMaxWorkers <= 0 {
		return Config{}, fmt.Errorf("SYNC_MAX_WORKERS must be > 0")
	}
	syncLogLimit, err := getEnvAsInt("SYNC_LOG_LIMIT", defaultSyncLogListLimit)
	if err != nil {
		return Config{}, fmt.Errorf("parse SYNC_LOG_LIMIT: %w", err)
	}
	if syncLogLimit <= 0 {
		return Config{}, fmt.Errorf("SYNC_LOG_LIMIT must be > 0")
	}

	return Config{
		AppEnv:                     appEnv,
		ServiceName:                strings.TrimSpace(getEnv("SERVICE_NAME", "wmfl-standings")),
		ServiceVersion:             strings.TrimSpace(getEnv("SERVICE_VERSION", "dev")),
		HTTPAddr:                   getEnv("HTTP_ADDR", ":8080"),
		DBURL:                      strings.TrimSpace(getEnv("DB_URL", "")),
		DBDisablePreparedBinary:    dbDisablePreparedBinary,
		CORSAllowedOrigins:         splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		ReadTimeout:                readTimeout,
		WriteTimeout:               writeTimeout,
		PprofEnabled:               pprofEnabled,
		PprofAddr:                  pprofAddr,
		UptraceEnabled:             uptraceEnabled,
		UptraceDSN:                 uptraceDSN,
		PyroscopeEnabled:           pyroscopeEnabled,
		PyroscopeServerAddress:     pyroscopeServerAddress,
		PyroscopeAppName:           strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", "wmfl-standings")),
		PyroscopeAuthToken:         strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:     strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword: strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:        pyroscopeUploadRate,
		WMFLURLTemplate:            wmflURLTemplate,
		WMFLTimeout:                wmflTimeout,
		WMFLUserAgent:              strings.TrimSpace(getEnv("WMFL_USER_AGENT", DefaultWMFLUserAgent)),
		WMFLInsecureTLS:            wmflInsecureTLS,
		WMFLCircuitEnabled:         wmflCircuitEnabled,
		WMFLCircuitFailureCount:    wmflCircuitFailureCount,
		WMFLCircuitOpenTimeout:     wmflCircuitOpenTimeout,
		DefaultTournamentID:        int64(defaultTournamentID),
		DefaultSeason:              strings.TrimSpace(getEnv("DEFAULT_SEASON", DefaultSeason)),
		SyncMaxWorkers:             syncMaxWorkers,
		SyncLogLimit:               syncLogLimit,
		LogLevel:                   logging.ParseLevel(getEnv("LOG_LEVEL", "info")),
		LogFile:                    strings.TrimSpace(getEnv("LOG_FILE", "")),
	}, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
