package config

import "time"

// Database and performance constants
const (
	DefaultQueryTimeout = 30 * time.Second
	StatsQueryTimeout   = 10 * time.Second
	NetworkDialTimeout  = 5 * time.Second

	// Cache settings
	CacheExpiration   = 5 * time.Minute
	RelationCacheSize = 4096

	// Pagination
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Engine constants
const (
	// Event-log rows scanned when recomputing mood from recent history.
	MoodWindowScanLimit = 50

	// Message scoring bounds for the LLM-based path.
	MinMessageDelta = -5
	MaxMessageDelta = 5
)

// API constants
const (
	RequestTimeout  = 30 * time.Second
	MaxRequestSize  = 1024 * 1024 // 1MB
	ShutdownTimeout = 10 * time.Second
)
