package exporter

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sales-performance/backend/internal/domain/aggregation"
	"github.com/sales-performance/backend/internal/domain/entity"
	"github.com/sales-performance/backend/internal/domain/valueobject"
)

func sampleSales() []*entity.Sale {
	first := entity.NewSale(
		time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC),
		"O'Brien", 2, "Reyes", decimal.RequireFromString("25000"), entity.SaleTypeDeed,
		"called back, wants \"premium\"", "L-1", "FDI-1", decimal.RequireFromString("14750"),
	)
	first.SetCommissionSnapshot(entity.CommissionSnapshot{
		CommissionPercentage: decimal.RequireFromString("6"),
		CommissionAmount:     decimal.RequireFromString("1500"),
		DailyVPG:             decimal.RequireFromString("12500"),
		FDIPoints:            decimal.RequireFromString("13750"),
		FDICost:              decimal.RequireFromString("48"),
	})

	second := entity.NewSale(
		time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC),
		"Lee", 0, "Reyes", decimal.RequireFromString("8000.5"), entity.SaleTypeTrust,
		"", "", "", decimal.Zero,
	)
	second.SetCommissionSnapshot(entity.CommissionSnapshot{
		CommissionPercentage: decimal.RequireFromString("6"),
		CommissionAmount:     decimal.RequireFromString("480.03"),
		DailyVPG:             decimal.Zero,
		FDIPoints:            decimal.RequireFromString("4400.28"),
		FDICost:              decimal.Zero,
	})
	second.IsCancelled = true

	return []*entity.Sale{first, second}
}

func TestCSVExporter_Export(t *testing.T) {
	sales := sampleSales()
	now := time.Date(2026, time.March, 20, 0, 0, 0, 0, time.UTC)
	result := aggregation.Aggregate(sales, valueobject.CurrentMonth{}, now)

	var buf bytes.Buffer
	if err := NewCSVExporter().Export(&buf, result.Filtered, result.Totals); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()

	expectedLines := []string{
		"Date,Client Last Name,Tours,Manager,Sale Type,Sale Amount,Commission %,Commission,Daily VPG,FDI Points,FDI Given Points,FDI Cost,Status,Lead Number,FDI,Notes",
		`2026-03-02,O'Brien,2,Reyes,DEED,25000.00,6,1500.00,12500.00,13750.00,14750,48.00,Active,L-1,FDI-1,"called back, wants ""premium"""`,
		"2026-03-09,Lee,0,Reyes,TRUST,8000.50,6,480.03,0.00,4400.28,0,0.00,Cancelled,,,",
		"",
		"TOTALS",
		"Total Volume,25000.00",
		"Total Commission,1500.00",
		"Active Sales,1",
		"Cancelled Sales,1",
		"DEED Sales,1",
		"TRUST Sales,0",
		"Total Tours,2",
		"VPG,12500.00",
		"Total FDI Points,13750.00",
		"Total FDI Given Points,14750",
		"Total FDI Cost,48.00",
	}
	expected := strings.Join(expectedLines, "\n") + "\n"

	if out != expected {
		t.Errorf("unexpected CSV output:\n%s\nexpected:\n%s", out, expected)
	}
}

func TestCSVExporter_Metadata(t *testing.T) {
	exporter := NewCSVExporter()
	if exporter.ContentType() != "text/csv" {
		t.Errorf("unexpected content type %q", exporter.ContentType())
	}
	if exporter.Extension() != "csv" {
		t.Errorf("unexpected extension %q", exporter.Extension())
	}
}

func TestReadSales_ReadsExportedReport(t *testing.T) {
	sales := sampleSales()

	var buf bytes.Buffer
	if err := NewCSVExporter().Export(&buf, sales, entity.NewSalesTotals(0)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	read, err := ReadSales(&buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(read) != 2 {
		t.Fatalf("expected 2 sales, got %d", len(read))
	}

	got := read[0]
	if got.ClientLastName != "O'Brien" || got.Notes != `called back, wants "premium"` {
		t.Errorf("text fields were not preserved: %+v", got)
	}
	if !got.Date.Equal(sales[0].Date) || got.NumberOfTours != 2 || got.SaleType != entity.SaleTypeDeed {
		t.Errorf("unexpected fields: %+v", got)
	}
	if !got.CommissionAmount.Equal(decimal.RequireFromString("1500")) || !got.FDICost.Equal(decimal.RequireFromString("48")) {
		t.Errorf("commission snapshot was not preserved: %+v", got)
	}
	if read[0].IsCancelled || !read[1].IsCancelled {
		t.Errorf("status was not preserved")
	}
	if read[0].ID == sales[0].ID {
		t.Errorf("expected a fresh ID")
	}
}

func TestReadSales_Invalid(t *testing.T) {
	validHeader := strings.Join(header, ",")

	tests := []struct {
		name  string
		input string
	}{
		{name: "empty input", input: ""},
		{name: "wrong header", input: "Date,Client\n"},
		{name: "bad date", input: validHeader + "\n03/02/2026,Lee,0,R,DEED,1,4,0.04,0,0.55,0,0,Active,,,\n"},
		{name: "bad sale type", input: validHeader + "\n2026-03-02,Lee,0,R,LEASE,1,4,0.04,0,0.55,0,0,Active,,,\n"},
		{name: "bad amount", input: validHeader + "\n2026-03-02,Lee,0,R,DEED,abc,4,0.04,0,0.55,0,0,Active,,,\n"},
		{name: "bad status", input: validHeader + "\n2026-03-02,Lee,0,R,DEED,1,4,0.04,0,0.55,0,0,Pending,,,\n"},
		{name: "missing fields", input: validHeader + "\n2026-03-02,Lee,0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadSales(strings.NewReader(tt.input))
			if !errors.Is(err, ErrInvalidReport) {
				t.Errorf("expected ErrInvalidReport, got %v", err)
			}
		})
	}
}

func TestReadSales_HeaderOnly(t *testing.T) {
	sales, err := ReadSales(strings.NewReader(strings.Join(header, ",") + "\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sales) != 0 {
		t.Errorf("expected no sales, got %d", len(sales))
	}
}
