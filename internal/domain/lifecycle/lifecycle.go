// Package lifecycle holds timing shared by startup and shutdown hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every start/stop hook.
const DefaultTimeout = 10 * time.Second
