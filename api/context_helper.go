package api

import (
	"context"
	"time"
)

// StoreTimeout is the default timeout for a single persistence round trip
const StoreTimeout = 10 * time.Second

// WithStoreTimeout creates a context with store timeout
func WithStoreTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, StoreTimeout)
}
