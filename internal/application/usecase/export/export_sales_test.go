package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sales-performance/backend/internal/domain/entity"
	domainerror "github.com/sales-performance/backend/internal/domain/error"
	"github.com/sales-performance/backend/internal/domain/valueobject"
)

type stubSaleRepository struct {
	sales []*entity.Sale
}

func (r *stubSaleRepository) Create(context.Context, *entity.Sale) error { return nil }

func (r *stubSaleRepository) FindByID(context.Context, uuid.UUID) (*entity.Sale, error) {
	return nil, domainerror.ErrSaleNotFound
}

func (r *stubSaleRepository) FindAll(context.Context) ([]*entity.Sale, error) { return r.sales, nil }

func (r *stubSaleRepository) Update(context.Context, *entity.Sale) error { return nil }

func (r *stubSaleRepository) Delete(context.Context, uuid.UUID) error { return nil }

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

// lineExporter writes one line per sale and a trailing totals line.
type lineExporter struct {
	err error
}

func (e *lineExporter) ContentType() string { return "text/plain" }

func (e *lineExporter) Extension() string { return "txt" }

func (e *lineExporter) Export(w io.Writer, sales []*entity.Sale, totals entity.SalesTotals) error {
	if e.err != nil {
		return e.err
	}
	for _, s := range sales {
		fmt.Fprintf(w, "%s %s\n", s.ClientLastName, s.Status())
	}
	fmt.Fprintf(w, "volume=%s active=%d cancelled=%d\n", totals.TotalVolume, totals.ActiveSales, totals.CancelledSales)
	return nil
}

func newSale(name string, day time.Time, amount int64, cancelled bool) *entity.Sale {
	sale := entity.NewSale(day, name, 1, "Reyes", decimal.NewFromInt(amount), entity.SaleTypeDeed, "", "", "", decimal.Zero)
	sale.IsCancelled = cancelled
	return sale
}

func TestExportSales(t *testing.T) {
	now := time.Date(2026, time.March, 20, 15, 0, 0, 0, time.UTC)
	anchor := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
	repo := &stubSaleRepository{sales: []*entity.Sale{
		newSale("Adams", anchor, 10000, false),
		newSale("Brown", anchor.AddDate(0, 0, 45), 20000, true),
		newSale("Clark", anchor.AddDate(0, 0, 46), 40000, false),
	}}
	window, err := valueobject.NewRolling(45, anchor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	uc := NewExportSalesUseCase(repo, &lineExporter{}, fixedClock{now: now}, "sales-report")
	output, err := uc.Execute(context.Background(), ExportSalesInput{Window: window})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Filename != "sales-report-45day-2026-03-20.txt" {
		t.Errorf("unexpected filename %q", output.Filename)
	}
	if output.ContentType != "text/plain" {
		t.Errorf("unexpected content type %q", output.ContentType)
	}
	if output.SaleCount != 2 {
		t.Errorf("expected 2 exported sales, got %d", output.SaleCount)
	}

	expected := "Adams Active\nBrown Cancelled\nvolume=10000 active=1 cancelled=1\n"
	if string(output.Content) != expected {
		t.Errorf("expected content %q, got %q", expected, string(output.Content))
	}
	if strings.Contains(string(output.Content), "Clark") {
		t.Error("sale outside the window was exported")
	}
}

func TestExportSales_ExporterError(t *testing.T) {
	exportErr := errors.New("disk full")
	uc := NewExportSalesUseCase(&stubSaleRepository{}, &lineExporter{err: exportErr}, fixedClock{now: time.Now()}, "sales-report")

	_, err := uc.Execute(context.Background(), ExportSalesInput{Window: valueobject.CurrentMonth{}})
	if !errors.Is(err, exportErr) {
		t.Errorf("expected wrapped exporter error, got %v", err)
	}
}
