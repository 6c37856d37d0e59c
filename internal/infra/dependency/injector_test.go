package dependency

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sales-performance/backend/config"
	"github.com/sales-performance/backend/internal/integration/entrypoint/dto"
	"github.com/sales-performance/backend/internal/integration/persistence/model"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(&model.SaleModel{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	cfg := &config.Config{
		Server:  config.ServerConfig{Environment: "test", Version: "test-build"},
		Metrics: config.MetricsConfig{Enabled: true, Path: "/metrics"},
		Export:  config.ExportConfig{FilenamePrefix: "sales-report"},
	}
	clock := fixedClock{now: time.Date(2026, time.March, 20, 15, 0, 0, 0, time.UTC)}

	injector := NewInjectorWithClock(cfg, db, func() bool { return true }, clock)
	return injector.Router.Setup(cfg.Server.Environment)
}

func doRequest(t *testing.T, engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response %q: %v", rec.Body.String(), err)
	}
	return out
}

func saleBody(date, client string, amount float64, saleType string) map[string]any {
	return map[string]any{
		"date":             date,
		"client_last_name": client,
		"number_of_tours":  2,
		"manager_name":     "Reyes",
		"sale_amount":      amount,
		"sale_type":        saleType,
	}
}

func TestSalesAPI_RecordListAndCancel(t *testing.T) {
	engine := newTestEngine(t)

	// First sale stays below the first tier.
	rec := doRequest(t, engine, http.MethodPost, "/api/v1/sales", saleBody("2026-03-02", "Walsh", 150000, "DEED"))
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	first := decode[dto.SaleResponse](t, rec)
	if first.CommissionPercentage != "6" || first.CommissionAmount != "9000" {
		t.Errorf("unexpected first snapshot: %s%% / %s", first.CommissionPercentage, first.CommissionAmount)
	}

	// Second sale crosses into tier 1.
	rec = doRequest(t, engine, http.MethodPost, "/api/v1/sales?range=monthly", saleBody("2026-03-05", "Okafor", 25000, "DEED"))
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	second := decode[dto.SaleResponse](t, rec)
	if second.CommissionPercentage != "6" || second.CommissionAmount != "1500" {
		t.Errorf("unexpected second snapshot: %s%% / %s", second.CommissionPercentage, second.CommissionAmount)
	}
	if second.Rank == nil || *second.Rank != 2 {
		t.Errorf("expected rank 2, got %v", second.Rank)
	}

	rec = doRequest(t, engine, http.MethodGet, "/api/v1/sales", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	list := decode[dto.SaleListResponse](t, rec)
	if len(list.Sales) != 2 || list.Totals.TotalVolume != "175000" || list.Totals.ActiveSales != 2 {
		t.Errorf("unexpected list: %d sales, totals %+v", len(list.Sales), list.Totals)
	}
	if list.Range != "monthly" || list.PeriodStart != "2026-03-01" || list.PeriodEnd != "2026-03-31" {
		t.Errorf("unexpected period: %s %s..%s", list.Range, list.PeriodStart, list.PeriodEnd)
	}

	// Cancelling removes the sale from totals but keeps it listed.
	rec = doRequest(t, engine, http.MethodPost, "/api/v1/sales/"+first.ID+"/cancel", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if cancelled := decode[dto.SaleResponse](t, rec); !cancelled.IsCancelled || cancelled.Status != "Cancelled" {
		t.Errorf("expected cancelled sale, got %+v", cancelled)
	}

	list = decode[dto.SaleListResponse](t, doRequest(t, engine, http.MethodGet, "/api/v1/sales", nil))
	if len(list.Sales) != 2 || list.Totals.TotalVolume != "25000" || list.Totals.CancelledSales != 1 {
		t.Errorf("unexpected totals after cancel: %+v", list.Totals)
	}
	// Snapshots are not recomputed.
	if list.Sales[1].CommissionAmount != "1500" {
		t.Errorf("expected second snapshot to stay 1500, got %s", list.Sales[1].CommissionAmount)
	}
}

func TestSalesAPI_EditNotesAndDelete(t *testing.T) {
	engine := newTestEngine(t)

	created := decode[dto.SaleResponse](t,
		doRequest(t, engine, http.MethodPost, "/api/v1/sales", saleBody("2026-03-10", "Lindqvist", 10000, "TRUST")))

	rec := doRequest(t, engine, http.MethodPatch, "/api/v1/sales/"+created.ID+"/notes", map[string]string{"notes": "call back"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := decode[dto.SaleResponse](t, rec); got.Notes != "call back" {
		t.Errorf("expected notes to be updated, got %q", got.Notes)
	}

	rec = doRequest(t, engine, http.MethodPut, "/api/v1/sales/"+created.ID, saleBody("2026-03-11", "Lindqvist", 30000, "DEED"))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	edited := decode[dto.SaleResponse](t, rec)
	if edited.ID != created.ID || edited.SaleAmount != "30000" || edited.CommissionPercentage != "5" {
		t.Errorf("unexpected edited sale: %+v", edited)
	}

	rec = doRequest(t, engine, http.MethodDelete, "/api/v1/sales/"+created.ID, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	rec = doRequest(t, engine, http.MethodDelete, "/api/v1/sales/"+created.ID, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for a deleted sale, got %d", rec.Code)
	}
}

func TestSalesAPI_Errors(t *testing.T) {
	engine := newTestEngine(t)

	tests := []struct {
		name           string
		method         string
		path           string
		body           any
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "unknown range",
			method:         http.MethodGet,
			path:           "/api/v1/sales?range=weekly",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "PRF-010001",
		},
		{
			name:           "malformed start date",
			method:         http.MethodGet,
			path:           "/api/v1/performance?range=45day&start_date=03/01/2026",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "PRF-010003",
		},
		{
			name:           "malformed sale id",
			method:         http.MethodPost,
			path:           "/api/v1/sales/not-a-uuid/cancel",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "SAL-010010",
		},
		{
			name:           "unknown sale",
			method:         http.MethodPost,
			path:           "/api/v1/sales/" + uuid.NewString() + "/cancel",
			expectedStatus: http.StatusNotFound,
			expectedCode:   "SAL-020001",
		},
		{
			name:           "invalid sale type",
			method:         http.MethodPost,
			path:           "/api/v1/sales",
			body:           saleBody("2026-03-10", "Moreau", 1000, "LEASE"),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "SAL-010001",
		},
		{
			name:           "malformed sale date",
			method:         http.MethodPost,
			path:           "/api/v1/sales",
			body:           saleBody("10/03/2026", "Moreau", 1000, "DEED"),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "SAL-010002",
		},
		{
			name:           "missing sale amount",
			method:         http.MethodPost,
			path:           "/api/v1/sales",
			body:           map[string]any{"date": "2026-03-10", "client_last_name": "Moreau", "sale_type": "DEED"},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "SAL-010009",
		},
		{
			name:           "negative quote",
			method:         http.MethodPost,
			path:           "/api/v1/commission/quote",
			body:           map[string]any{"sale_amount": -5, "sale_type": "DEED"},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "PRF-010004",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, engine, tt.method, tt.path, tt.body)
			if rec.Code != tt.expectedStatus {
				t.Fatalf("expected %d, got %d: %s", tt.expectedStatus, rec.Code, rec.Body.String())
			}
			if got := decode[dto.ErrorResponse](t, rec); got.Code != tt.expectedCode {
				t.Errorf("expected code %s, got %s", tt.expectedCode, got.Code)
			}
		})
	}
}

func TestPerformanceAPI(t *testing.T) {
	engine := newTestEngine(t)

	doRequest(t, engine, http.MethodPost, "/api/v1/sales?range=45day&start_date=2026-03-01",
		saleBody("2026-03-03", "Haddad", 200000, "TRUST"))

	rec := doRequest(t, engine, http.MethodGet, "/api/v1/performance?range=45day&start_date=2026-03-01", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	perf := decode[dto.PerformanceResponse](t, rec)
	if perf.Range != "45day" || perf.PeriodEnd != "2026-04-15" {
		t.Errorf("unexpected window: %s ending %s", perf.Range, perf.PeriodEnd)
	}
	if perf.CurrentTier == nil || perf.CurrentTier.Level != 1 {
		t.Fatalf("expected tier 1, got %+v", perf.CurrentTier)
	}
	if perf.NextTier == nil || perf.NextTier.Level != 2 || perf.VolumeToNextTier != "43750" {
		t.Errorf("unexpected next tier: %+v, %s to go", perf.NextTier, perf.VolumeToNextTier)
	}

	rec = doRequest(t, engine, http.MethodGet, "/api/v1/commission/tiers", nil)
	if tiers := decode[dto.TierListResponse](t, rec); len(tiers.Tiers) != 8 {
		t.Errorf("expected 8 tiers, got %d", len(tiers.Tiers))
	}

	rec = doRequest(t, engine, http.MethodPost, "/api/v1/commission/quote", map[string]any{
		"sale_amount":       25000,
		"sale_type":         "DEED",
		"number_of_tours":   4,
		"fdi_given_points":  14750,
		"cumulative_volume": 150000,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	quote := decode[dto.QuoteResponse](t, rec)
	if quote.TotalRate != "6" || quote.CommissionAmount != "1500" || quote.FDICost != "48" || quote.DailyVPG != "6250" {
		t.Errorf("unexpected quote: %+v", quote)
	}
}

func TestExportAPI(t *testing.T) {
	engine := newTestEngine(t)

	doRequest(t, engine, http.MethodPost, "/api/v1/sales", saleBody("2026-03-03", "Novak", 12000, "DEED"))

	rec := doRequest(t, engine, http.MethodGet, "/api/v1/export", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("expected text/csv, got %s", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "sales-report-monthly-2026-03-20.csv") {
		t.Errorf("unexpected Content-Disposition: %s", cd)
	}
	if !strings.Contains(rec.Body.String(), "Novak") || !strings.Contains(rec.Body.String(), "TOTALS") {
		t.Errorf("unexpected report body: %s", rec.Body.String())
	}
}

func TestHealthAndMetrics(t *testing.T) {
	engine := newTestEngine(t)

	rec := doRequest(t, engine, http.MethodGet, "/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"store":"connected"`) || !strings.Contains(rec.Body.String(), "test-build") {
		t.Errorf("unexpected health body: %s", rec.Body.String())
	}

	doRequest(t, engine, http.MethodPost, "/api/v1/sales", saleBody("2026-03-03", "Ito", 5000, "TRUST"))

	rec = doRequest(t, engine, http.MethodGet, "/metrics", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	for _, name := range []string{"sales_session_mutations_total", "sales_http_requests_total"} {
		if !strings.Contains(body, name) {
			t.Errorf("expected metric %s in exposition", name)
		}
	}
}
