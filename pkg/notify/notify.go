package notify

import "context"

// Notifier delivers a formatted message to a destination (a webhook URL for
// the shipped implementation). Send returns the delivery outcome so callers
// can decide whether to log or ignore it; it never panics.
type Notifier interface {
	Send(ctx context.Context, destination, message string) error
}
