package adapter

import "time"

// Clock provides the wall-clock time used to evaluate reporting windows.
type Clock interface {
	Now() time.Time
}
