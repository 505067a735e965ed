// Package delivery defines the contract every transport entry point satisfies.
package delivery

import "context"

// Delivery is a long-running transport (HTTP server, background worker) whose
// lifetime is managed by the application container.
type Delivery interface {
	Serve(ctx context.Context) error
}
