package adapter

import (
	"github.com/sales-performance/backend/internal/domain/entity"
	"github.com/sales-performance/backend/internal/domain/valueobject"
)

// Sale mutation operations reported to the metrics recorder.
const (
	SaleOperationRecord      = "record"
	SaleOperationUpdate      = "update"
	SaleOperationDelete      = "delete"
	SaleOperationCancel      = "cancel"
	SaleOperationReinstate   = "reinstate"
	SaleOperationUpdateNotes = "update_notes"
)

// MetricsRecorder receives business events for instrumentation.
type MetricsRecorder interface {
	// SaleMutated counts a change to the session sales.
	SaleMutated(operation string, saleType entity.SaleType)

	// CommissionQuoted counts a derived commission snapshot at the given tier level (0 below the table).
	CommissionQuoted(tierLevel int)

	// TotalsComputed publishes the totals of the latest aggregation for a window kind.
	TotalsComputed(kind valueobject.WindowKind, totals entity.SalesTotals)
}
