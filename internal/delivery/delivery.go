// Package delivery defines the contract between the application core and
// its transport servers.
package delivery

import "context"

// Delivery is implemented by every transport server the application can run.
type Delivery interface {
	// Serve blocks until the server stops or the context is cancelled.
	Serve(ctx context.Context) error
}
