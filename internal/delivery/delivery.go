// Package delivery defines the contract every transport front end satisfies.
package delivery

import "context"

// Delivery is a serving surface started by main. Serve blocks until the
// server stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
