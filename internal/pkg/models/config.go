package models

import "time"

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NATS      NATSConfig
	NSQ       NSQConfig
	Telemetry TelemetryConfig
	Tracking  TrackingConfig
	NewRelic  NewRelicConfig
	Logger    LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// NSQConfig contains NSQ daemon configuration
type NSQConfig struct {
	Address        string
	LookupAddrs    []string
	AlertsTopic    string
	ConsumeChannel string
}

// TelemetryConfig points at the upstream telemetry provider
type TelemetryConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// TrackingConfig carries the tunable thresholds of the tracking pipeline.
// Defaults match the documented contract; all values are overridable from
// the environment so operators can tune them per fleet.
type TrackingConfig struct {
	PollInterval     time.Duration // snapshot poll tick, default 15s
	CriticalFactor   float64       // speed >= limit*factor escalates to critical
	StopSpeedKmh     float64       // samples below this speed count as stopped
	MinStopDuration  time.Duration // shorter low-speed runs are GPS jitter
	MaxStopMergeGap  time.Duration // merge stop runs separated by at most this gap
	StaleAfter       time.Duration // vehicles silent longer than this report offline
	HistoryRetention time.Duration // how long ingested pings are kept
	IngestBufferSize int           // pending pings before the consumer blocks
}

// NewRelicConfig contains New Relic agent configuration
type NewRelicConfig struct {
	LicenseKey string
	AppName    string
	Enabled    bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
