// Package lifecycle holds shared timeouts for fx start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds graceful start and shutdown operations.
const DefaultTimeout = 10 * time.Second
