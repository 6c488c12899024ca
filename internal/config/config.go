package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Storage backends.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Config stores service settings.
type Config struct {
	Port      int
	Storage   string
	DB        DB
	Engine    Engine
	Simulator Simulator
	Geocoder  Geocoder
	Kafka     Kafka
	Log       Log
	RateLimit RateLimit
	Pprof     Pprof
}

// DB stores PostgreSQL connection settings.
type DB struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// DSN builds a postgres connection string.
func (d DB) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Pass),
		Host:     d.Host + ":" + d.Port,
		Path:     "/" + d.Name,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// Engine stores clock and coordinator settings.
type Engine struct {
	RiskWindow       time.Duration
	OperationTimeout time.Duration
}

// Simulator stores simulator loop settings.
type Simulator struct {
	Tick                time.Duration
	IntervalMinutes     int
	SelectProbability   float64
	CompleteProbability float64
	CancelProbability   float64
}

// Geocoder stores geocoding gateway settings. An empty URL selects the static geocoder.
type Geocoder struct {
	URL         string
	Timeout     time.Duration
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// Kafka stores change-notification publisher settings. No brokers disables publishing.
type Kafka struct {
	Brokers []string
	Topic   string
}

// RateLimit stores per-requester token bucket settings.
type RateLimit struct {
	Enabled    bool
	Rate       float64
	Burst      int
	TTL        time.Duration
	MaxBuckets int
}

// Pprof stores the debug listener settings. Non-loopback callers need basic auth.
type Pprof struct {
	Enabled bool
	Addr    string
	User    string
	Pass    string
}

// Log stores logging settings.
type Log struct {
	Format string
	Level  string
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:      defaultPort,
		Storage:   defaultStorage,
		DB:        defaultDB,
		Engine:    defaultEngine,
		Simulator: defaultSimulator,
		Geocoder:  defaultGeocoder,
		Kafka:     Kafka{Topic: "dispatch.changes"},
		Log:       defaultLog,
		RateLimit: defaultRateLimit,
		Pprof:     defaultPprof,
	}

	if err := fromEnv(cfg); err != nil {
		return nil, err
	}

	fs := pflag.NewFlagSet(os.Args[0], pflag.ContinueOnError)
	fs.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	fs.StringVar(&cfg.Storage, "storage", cfg.Storage, "record store backend: memory|postgres")
	fs.DurationVar(&cfg.Engine.RiskWindow, "risk-window", cfg.Engine.RiskWindow, "initial risk window")
	fs.StringVar(&cfg.Log.Format, "log-format", cfg.Log.Format, "log backend: json|text|zap")
	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fromEnv(cfg *Config) error {
	var err error
	if cfg.Port, err = envInt("PORT", cfg.Port); err != nil {
		return err
	}
	cfg.Storage = envString("STORAGE", cfg.Storage)

	cfg.DB.Host = envString("POSTGRES_HOST", cfg.DB.Host)
	cfg.DB.Port = envString("POSTGRES_PORT", cfg.DB.Port)
	cfg.DB.User = envString("POSTGRES_USER", cfg.DB.User)
	cfg.DB.Pass = envString("POSTGRES_PASSWORD", cfg.DB.Pass)
	cfg.DB.Name = envString("POSTGRES_DB", cfg.DB.Name)
	if _, err := strconv.Atoi(cfg.DB.Port); err != nil {
		return fmt.Errorf("invalid POSTGRES_PORT %q: %w", cfg.DB.Port, err)
	}

	if cfg.Engine.RiskWindow, err = envDuration("RISK_WINDOW", cfg.Engine.RiskWindow); err != nil {
		return err
	}
	if cfg.Engine.OperationTimeout, err = envDuration("OPERATION_TIMEOUT", cfg.Engine.OperationTimeout); err != nil {
		return err
	}

	if cfg.Simulator.Tick, err = envDuration("SIMULATOR_TICK", cfg.Simulator.Tick); err != nil {
		return err
	}
	if cfg.Simulator.IntervalMinutes, err = envInt("SIMULATOR_INTERVAL_MINUTES", cfg.Simulator.IntervalMinutes); err != nil {
		return err
	}
	if cfg.Simulator.SelectProbability, err = envFloat("SIMULATOR_SELECT_PROBABILITY", cfg.Simulator.SelectProbability); err != nil {
		return err
	}
	if cfg.Simulator.CompleteProbability, err = envFloat("SIMULATOR_COMPLETE_PROBABILITY", cfg.Simulator.CompleteProbability); err != nil {
		return err
	}
	if cfg.Simulator.CancelProbability, err = envFloat("SIMULATOR_CANCEL_PROBABILITY", cfg.Simulator.CancelProbability); err != nil {
		return err
	}

	cfg.Geocoder.URL = envString("GEOCODER_URL", cfg.Geocoder.URL)
	if cfg.Geocoder.Timeout, err = envDuration("GEOCODER_TIMEOUT", cfg.Geocoder.Timeout); err != nil {
		return err
	}
	if cfg.Geocoder.MaxAttempts, err = envInt("GEOCODER_MAX_ATTEMPTS", cfg.Geocoder.MaxAttempts); err != nil {
		return err
	}
	if cfg.Geocoder.BaseDelay, err = envDuration("GEOCODER_BASE_DELAY", cfg.Geocoder.BaseDelay); err != nil {
		return err
	}
	if cfg.Geocoder.MaxDelay, err = envDuration("GEOCODER_MAX_DELAY", cfg.Geocoder.MaxDelay); err != nil {
		return err
	}

	if v := envString("KAFKA_BROKERS", ""); v != "" {
		cfg.Kafka.Brokers = splitList(v)
	}
	cfg.Kafka.Topic = envString("KAFKA_TOPIC", cfg.Kafka.Topic)

	cfg.Log.Format = envString("LOG_FORMAT", cfg.Log.Format)
	cfg.Log.Level = envString("LOG_LEVEL", cfg.Log.Level)

	if cfg.RateLimit.Enabled, err = envBool("RATE_LIMIT_ENABLED", cfg.RateLimit.Enabled); err != nil {
		return err
	}
	if cfg.RateLimit.Rate, err = envFloat("RATE_LIMIT_RPS", cfg.RateLimit.Rate); err != nil {
		return err
	}
	if cfg.RateLimit.Burst, err = envInt("RATE_LIMIT_BURST", cfg.RateLimit.Burst); err != nil {
		return err
	}
	if cfg.RateLimit.TTL, err = envDuration("RATE_LIMIT_TTL", cfg.RateLimit.TTL); err != nil {
		return err
	}
	if cfg.RateLimit.MaxBuckets, err = envInt("RATE_LIMIT_MAX_BUCKETS", cfg.RateLimit.MaxBuckets); err != nil {
		return err
	}

	if cfg.Pprof.Enabled, err = envBool("PPROF_ENABLED", cfg.Pprof.Enabled); err != nil {
		return err
	}
	cfg.Pprof.Addr = envString("PPROF_ADDR", cfg.Pprof.Addr)
	cfg.Pprof.User = envString("PPROF_USER", cfg.Pprof.User)
	cfg.Pprof.Pass = envString("PPROF_PASS", cfg.Pprof.Pass)
	return nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.Storage != StorageMemory && c.Storage != StoragePostgres {
		return fmt.Errorf("invalid storage: %q", c.Storage)
	}
	if c.Engine.RiskWindow <= 0 {
		return fmt.Errorf("invalid risk window: %s", c.Engine.RiskWindow)
	}
	if c.Simulator.Tick <= 0 || c.Simulator.IntervalMinutes <= 0 {
		return fmt.Errorf("invalid simulator settings: tick=%s interval=%d", c.Simulator.Tick, c.Simulator.IntervalMinutes)
	}
	for _, p := range []float64{c.Simulator.SelectProbability, c.Simulator.CompleteProbability, c.Simulator.CancelProbability} {
		if p < 0 || p > 1 {
			return fmt.Errorf("invalid simulator probability: %v", p)
		}
	}
	if c.Geocoder.MaxAttempts <= 0 {
		return fmt.Errorf("invalid geocoder max attempts: %d", c.Geocoder.MaxAttempts)
	}
	if c.RateLimit.Enabled && (c.RateLimit.Rate <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("invalid rate limit: rps=%v burst=%d", c.RateLimit.Rate, c.RateLimit.Burst)
	}
	if c.Pprof.Enabled && c.Pprof.Addr == "" {
		return fmt.Errorf("pprof enabled without an address")
	}
	return nil
}

func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

func envBool(key string, def bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return b, nil
}

func envFloat(key string, def float64) (float64, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return f, nil
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
