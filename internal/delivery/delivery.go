// Package delivery defines the entry points that expose the application to
// the outside world.
package delivery

import "context"

// Delivery is implemented by every serving surface (HTTP API, worker).
type Delivery interface {
	// Serve blocks until the underlying server stops.
	Serve(ctx context.Context) error
}
