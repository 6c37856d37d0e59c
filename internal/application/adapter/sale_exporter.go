package adapter

import (
	"io"

	"github.com/sales-performance/backend/internal/domain/entity"
)

// SaleExporter writes a report of sales and their totals.
type SaleExporter interface {
	// ContentType returns the MIME type of the written report.
	ContentType() string

	// Extension returns the file extension of the report, without the dot.
	Extension() string

	// Export writes sales followed by the totals block to w.
	Export(w io.Writer, sales []*entity.Sale, totals entity.SalesTotals) error
}
