package config

import "time"

const defaultPort = 8080

const defaultStorage = StorageMemory

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "myuser",
	Pass: "mypassword",
	Name: "dispatch_db",
}

var defaultEngine = Engine{
	RiskWindow:       time.Hour,
	OperationTimeout: 3 * time.Second,
}

var defaultSimulator = Simulator{
	Tick:                2 * time.Second,
	IntervalMinutes:     15,
	SelectProbability:   0.2,
	CompleteProbability: 0.3,
	CancelProbability:   0.05,
}

var defaultGeocoder = Geocoder{
	Timeout:     5 * time.Second,
	MaxAttempts: 4,
	BaseDelay:   150 * time.Millisecond,
	MaxDelay:    2 * time.Second,
}

var defaultRateLimit = RateLimit{
	Enabled:    true,
	Rate:       20,
	Burst:      40,
	TTL:        10 * time.Minute,
	MaxBuckets: 10000,
}

var defaultPprof = Pprof{
	Addr: "127.0.0.1:6060",
}

var defaultLog = Log{
	Format: "json",
	Level:  "info",
}

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultDB returns the default database settings.
func DefaultDB() DB {
	return defaultDB
}

// DefaultEngine returns the default engine settings.
func DefaultEngine() Engine {
	return defaultEngine
}

// DefaultSimulator returns the default simulator settings.
func DefaultSimulator() Simulator {
	return defaultSimulator
}

// DefaultGeocoder returns the default geocoder settings.
func DefaultGeocoder() Geocoder {
	return defaultGeocoder
}

// DefaultLog returns the default logging settings.
func DefaultLog() Log {
	return defaultLog
}

// DefaultRateLimit returns the default rate limit settings.
func DefaultRateLimit() RateLimit {
	return defaultRateLimit
}
