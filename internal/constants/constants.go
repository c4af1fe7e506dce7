package constants

import "time"

const (
	SnapshotCacheTTL = 5 * time.Minute
)

const (
	StoreTimeout   = 5 * time.Second
	RequestTimeout = 30 * time.Second
	ClientTimeout  = 10 * time.Second
)

const (
	DBMaxOpenConns    = 8
	DBMaxIdleConns    = 4
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
)

const (
	ShutdownTimeout = 5 * time.Second
)

const (
	ContenderLimit    = 15
	RecencyWindowDays = 20
	RecencyBonus      = 2
)
