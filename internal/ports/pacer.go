package ports

import "context"

// Pacer is invoked after every outbound service call
type Pacer interface {
	Wait(ctx context.Context)
}

// PacerFunc adapts a function to Pacer
type PacerFunc func(ctx context.Context)

// Wait calls f(ctx)
func (f PacerFunc) Wait(ctx context.Context) {
	f(ctx)
}
