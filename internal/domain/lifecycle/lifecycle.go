// Package lifecycle holds shared constants for application startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds lifecycle hooks such as DB pings and graceful shutdown.
const DefaultTimeout = 10 * time.Second
