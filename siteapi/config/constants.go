package config

import "time"

// Database and Performance Constants
const (
	// Timeouts
	DefaultQueryTimeout = 30 * time.Second
	BatchQueryTimeout   = 2 * time.Minute
	MigrationTimeout    = 10 * time.Minute

	// Cache
	DefaultUserCacheSize = 1024
)

// MaxRolePermissions is the largest permission bitfield a role may carry.
const MaxRolePermissions = 2 << 32
