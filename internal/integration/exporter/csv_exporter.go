// Package exporter renders sales reports for download.
package exporter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sales-performance/backend/internal/application/adapter"
	"github.com/sales-performance/backend/internal/domain/entity"
)

const (
	dateLayout = "2006-01-02"

	// totalsMarker opens the totals block that follows the sale rows.
	totalsMarker = "TOTALS"
)

// header lists the sale columns in file order.
var header = []string{
	"Date",
	"Client Last Name",
	"Tours",
	"Manager",
	"Sale Type",
	"Sale Amount",
	"Commission %",
	"Commission",
	"Daily VPG",
	"FDI Points",
	"FDI Given Points",
	"FDI Cost",
	"Status",
	"Lead Number",
	"FDI",
	"Notes",
}

// ErrInvalidReport is returned when a report does not follow the export layout.
var ErrInvalidReport = errors.New("invalid sales report")

// CSVExporter writes and reads sales reports as CSV.
type CSVExporter struct{}

// NewCSVExporter creates a new CSVExporter.
func NewCSVExporter() adapter.SaleExporter {
	return &CSVExporter{}
}

// ContentType implements adapter.SaleExporter.
func (e *CSVExporter) ContentType() string {
	return "text/csv"
}

// Extension implements adapter.SaleExporter.
func (e *CSVExporter) Extension() string {
	return "csv"
}

// Export writes a header, one row per sale, a blank row and the totals block.
func (e *CSVExporter) Export(w io.Writer, sales []*entity.Sale, totals entity.SalesTotals) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, sale := range sales {
		if err := cw.Write(saleRecord(sale)); err != nil {
			return fmt.Errorf("failed to write sale %s: %w", sale.ID, err)
		}
	}

	rows := append([][]string{{""}, {totalsMarker}}, totalsRecords(totals)...)
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write totals: %w", err)
	}

	return cw.Error()
}

func saleRecord(sale *entity.Sale) []string {
	return []string{
		sale.Date.Format(dateLayout),
		sale.ClientLastName,
		strconv.Itoa(sale.NumberOfTours),
		sale.ManagerName,
		string(sale.SaleType),
		sale.SaleAmount.StringFixed(2),
		sale.CommissionPercentage.String(),
		sale.CommissionAmount.StringFixed(2),
		sale.DailyVPG.StringFixed(2),
		sale.FDIPoints.StringFixed(2),
		sale.FDIGivenPoints.String(),
		sale.FDICost.StringFixed(2),
		sale.Status(),
		sale.LeadNumber,
		sale.FDI,
		sale.Notes,
	}
}

func totalsRecords(totals entity.SalesTotals) [][]string {
	return [][]string{
		{"Total Volume", totals.TotalVolume.StringFixed(2)},
		{"Total Commission", totals.TotalCommission.StringFixed(2)},
		{"Active Sales", strconv.Itoa(totals.ActiveSales)},
		{"Cancelled Sales", strconv.Itoa(totals.CancelledSales)},
		{"DEED Sales", strconv.Itoa(totals.DeedSales)},
		{"TRUST Sales", strconv.Itoa(totals.TrustSales)},
		{"Total Tours", strconv.Itoa(totals.TotalTours)},
		{"VPG", totals.MonthlyVPG.StringFixed(2)},
		{"Total FDI Points", totals.TotalFDIPoints.StringFixed(2)},
		{"Total FDI Given Points", totals.TotalFDIGivenPoints.String()},
		{"Total FDI Cost", totals.TotalFDICost.StringFixed(2)},
	}
}

// ReadSales parses the sale rows of a report written by Export.
// Reading stops at the totals block; every sale gets a fresh ID.
func ReadSales(r io.Reader) ([]*entity.Sale, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	first, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: missing header: %v", ErrInvalidReport, err)
	}
	if !equalRecords(first, header) {
		return nil, fmt.Errorf("%w: unexpected header", ErrInvalidReport)
	}

	sales := make([]*entity.Sale, 0)
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidReport, err)
		}

		if len(record) == 1 && strings.TrimSpace(record[0]) == "" {
			continue
		}
		if record[0] == totalsMarker {
			break
		}

		line, _ := cr.FieldPos(0)
		sale, err := parseSaleRecord(record)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidReport, line, err)
		}
		sales = append(sales, sale)
	}

	return sales, nil
}

func parseSaleRecord(record []string) (*entity.Sale, error) {
	if len(record) != len(header) {
		return nil, fmt.Errorf("expected %d fields, got %d", len(header), len(record))
	}

	date, err := parseDate(record[0])
	if err != nil {
		return nil, err
	}

	tours, err := strconv.Atoi(record[2])
	if err != nil {
		return nil, fmt.Errorf("invalid tours %q", record[2])
	}

	saleType := entity.SaleType(record[4])
	if !saleType.IsValid() {
		return nil, fmt.Errorf("invalid sale type %q", record[4])
	}

	decimals := make([]decimal.Decimal, 0, 7)
	for _, idx := range []int{5, 6, 7, 8, 9, 10, 11} {
		value, err := decimal.NewFromString(record[idx])
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q", header[idx], record[idx])
		}
		decimals = append(decimals, value)
	}

	var cancelled bool
	switch record[12] {
	case "Active":
	case "Cancelled":
		cancelled = true
	default:
		return nil, fmt.Errorf("invalid status %q", record[12])
	}

	return &entity.Sale{
		ID:                   uuid.New(),
		Date:                 date,
		ClientLastName:       record[1],
		NumberOfTours:        tours,
		ManagerName:          record[3],
		SaleType:             saleType,
		SaleAmount:           decimals[0],
		CommissionPercentage: decimals[1],
		CommissionAmount:     decimals[2],
		DailyVPG:             decimals[3],
		FDIPoints:            decimals[4],
		FDIGivenPoints:       decimals[5],
		FDICost:              decimals[6],
		IsCancelled:          cancelled,
		LeadNumber:           record[13],
		FDI:                  record[14],
		Notes:                record[15],
	}, nil
}

func parseDate(value string) (time.Time, error) {
	date, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", value)
	}
	return date, nil
}

func equalRecords(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if strings.TrimSpace(a[i]) != b[i] {
			return false
		}
	}
	return true
}
