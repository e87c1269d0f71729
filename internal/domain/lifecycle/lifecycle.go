// Package lifecycle holds shared start/stop settings.
package lifecycle

import "time"

// DefaultTimeout bounds start pings and graceful shutdowns.
const DefaultTimeout = 10 * time.Second
