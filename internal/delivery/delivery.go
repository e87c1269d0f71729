// Package delivery defines the entry points that expose the application to the outside.
package delivery

import "context"

// Delivery is a long running inbound adapter such as the HTTP API or the job scheduler.
type Delivery interface {
	// Serve blocks until the delivery stops or fails.
	Serve(ctx context.Context) error
}
