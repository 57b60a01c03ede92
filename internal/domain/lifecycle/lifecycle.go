// Package lifecycle holds shared timing constants for start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds pings on start and graceful shutdowns on stop.
const DefaultTimeout = 10 * time.Second
