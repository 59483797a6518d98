// Package delivery holds the transports that expose the use cases.
package delivery

import "context"

// Delivery is a transport that serves until it is stopped.
type Delivery interface {
	Serve(ctx context.Context) error
}
