// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"time"

	"github.com/sales-performance/backend/internal/application/adapter"
)

// systemClock implements adapter.Clock with the wall clock in UTC.
type systemClock struct{}

// NewSystemClock creates a clock backed by time.Now.
func NewSystemClock() adapter.Clock {
	return systemClock{}
}

// Now returns the current time in UTC.
func (systemClock) Now() time.Time {
	return time.Now().UTC()
}
