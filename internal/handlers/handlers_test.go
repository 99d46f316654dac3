package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammica/fuel-backend/internal/audit"
	"github.com/ammica/fuel-backend/internal/database"
	"github.com/ammica/fuel-backend/internal/services"
)

var testOrigins = []string{"http://localhost:3000"}

func newTestRouter(t *testing.T, db *sqlx.DB) *chi.Mux {
	t.Helper()
	logger, _ := logtest.NewNullLogger()
	return NewRouter(Dependencies{
		DB:             db,
		Ledger:         services.NewLedgerService(db, audit.NewLogger(logger)),
		Reports:        services.NewReportService(db),
		AllowedOrigins: testOrigins,
	})
}

func newSQLiteRouter(t *testing.T) (*chi.Mux, *sqlx.DB) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fuel.db")
	require.NoError(t, database.Migrate(database.DriverSQLite, path))
	db, err := database.OpenSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return newTestRouter(t, db), db
}

func newMockRouter(t *testing.T) (*chi.Mux, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return newTestRouter(t, sqlx.NewDb(mockDB, "sqlmock")), sqlMock
}

func doRequest(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) services.ErrorResponse {
	t.Helper()
	var resp services.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestLogSale_Validation(t *testing.T) {
	router, db := newSQLiteRouter(t)

	tests := []struct {
		name    string
		body    string
		status  int
		message string
	}{
		{name: "missing date", body: `{"fuel_type":"diesel","quantity":10,"price":2.5}`, status: http.StatusBadRequest, message: "Missing required fields"},
		{name: "missing quantity", body: `{"fuel_type":"diesel","price":2.5,"date":"2024-01-01"}`, status: http.StatusBadRequest, message: "Missing required fields"},
		{name: "empty fuel type", body: `{"fuel_type":"","quantity":1,"price":1,"date":"2024-01-01"}`, status: http.StatusBadRequest, message: "Missing required fields"},
		{name: "malformed json", body: `{"fuel_type":`, status: http.StatusBadRequest, message: "Invalid request body"},
		{name: "non numeric quantity", body: `{"fuel_type":"diesel","quantity":"lots","price":1,"date":"2024-01-01"}`, status: http.StatusBadRequest, message: "Invalid request body"},
		{name: "two objects", body: `{"fuel_type":"diesel","quantity":1,"price":1,"date":"2024-01-01"}{}`, status: http.StatusBadRequest, message: "Request body must only contain a single JSON object"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, http.MethodPost, "/api/sales", tt.body)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.message, decodeError(t, w).Error)
		})
	}

	var n int
	require.NoError(t, db.Get(&n, "SELECT COUNT(*) FROM sales"))
	assert.Zero(t, n)
}

func TestLogSale_NumericStrings(t *testing.T) {
	router, db := newSQLiteRouter(t)

	w := doRequest(router, http.MethodPost, "/api/sales", `{"fuel_type":"petrol","quantity":"12.5","price":"1.8","date":"2024-05-01"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"message":"Sale logged successfully"}`, w.Body.String())

	var quantity float64
	require.NoError(t, db.Get(&quantity, "SELECT quantity FROM sales WHERE fuel_type = ?", "petrol"))
	assert.Equal(t, 12.5, quantity)
}

func TestLogSale_IgnoresUnknownFields(t *testing.T) {
	router, db := newSQLiteRouter(t)

	w := doRequest(router, http.MethodPost, "/api/sales", `{"fuel_type":"diesel","quantity":1,"price":1,"date":"2024-01-01","pump":3}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	var n int
	require.NoError(t, db.Get(&n, "SELECT COUNT(*) FROM sales"))
	assert.Equal(t, 1, n)
}

func TestLogSale_StoreFailure(t *testing.T) {
	router, sqlMock := newMockRouter(t)

	sqlMock.ExpectExec("INSERT INTO sales").
		WillReturnError(errors.New("connection reset by peer"))

	w := doRequest(router, http.MethodPost, "/api/sales", `{"fuel_type":"diesel","quantity":1,"price":1,"date":"2024-01-01"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "connection reset by peer", decodeError(t, w).Error)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestAddCustomer_Validation(t *testing.T) {
	router, _ := newSQLiteRouter(t)

	for _, body := range []string{`{}`, `{"name":""}`, `{"name":"   "}`} {
		w := doRequest(router, http.MethodPost, "/api/customers", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Equal(t, "Customer name is required", decodeError(t, w).Error, body)
	}
}

func TestApplyReward_Validation(t *testing.T) {
	router, _ := newSQLiteRouter(t)
	require.Equal(t, http.StatusCreated, doRequest(router, http.MethodPost, "/api/customers", `{"name":"Alice"}`).Code)

	tests := []struct {
		name    string
		body    string
		status  int
		message string
	}{
		{name: "missing points", body: `{"name":"Alice"}`, status: http.StatusBadRequest, message: "Name and points are required"},
		{name: "missing name", body: `{"points":5}`, status: http.StatusBadRequest, message: "Name and points are required"},
		{name: "fractional points", body: `{"name":"Alice","points":5.5}`, status: http.StatusBadRequest, message: "Invalid points value"},
		{name: "non numeric points", body: `{"name":"Alice","points":"abc"}`, status: http.StatusBadRequest, message: "Invalid request body"},
		{name: "zero points", body: `{"name":"Alice","points":0}`, status: http.StatusBadRequest, message: "Points must be a positive integer"},
		{name: "negative points", body: `{"name":"Alice","points":-2}`, status: http.StatusBadRequest, message: "Points must be a positive integer"},
		{name: "unknown customer", body: `{"name":"Bob","points":5}`, status: http.StatusNotFound, message: "Customer not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, http.MethodPost, "/api/reward", tt.body)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.message, decodeError(t, w).Error)
		})
	}

	w := doRequest(router, http.MethodGet, "/api/customers/Alice", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":1,"name":"Alice","points":0}`, w.Body.String())
}

func TestApplyReward_IntegralValues(t *testing.T) {
	router, _ := newSQLiteRouter(t)
	require.Equal(t, http.StatusCreated, doRequest(router, http.MethodPost, "/api/customers", `{"name":"Alice"}`).Code)

	bodies := []string{
		`{"name":"Alice","points":"7"}`,
		`{"name":"Alice","points":5.0}`,
		`{"name":"Alice","points":1e2}`,
		`{"name":"Alice","points":1,"note":"extra fields are ignored"}`,
	}
	for _, body := range bodies {
		w := doRequest(router, http.MethodPost, "/api/reward", body)
		assert.Equal(t, http.StatusOK, w.Code, body)
		assert.JSONEq(t, `{"message":"Points updated successfully"}`, w.Body.String(), body)
	}

	w := doRequest(router, http.MethodGet, "/api/customers/Alice", "")
	assert.JSONEq(t, `{"id":1,"name":"Alice","points":113}`, w.Body.String())
}

func TestApplyReward_ConcurrentRequests(t *testing.T) {
	router, _ := newSQLiteRouter(t)
	require.Equal(t, http.StatusCreated, doRequest(router, http.MethodPost, "/api/customers", `{"name":"Alice"}`).Code)

	const n = 20
	codes := make(chan int, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			codes <- doRequest(router, http.MethodPost, "/api/reward", `{"name":"Alice","points":1}`).Code
		}()
	}
	wg.Wait()
	close(codes)

	for code := range codes {
		assert.Equal(t, http.StatusOK, code)
	}

	w := doRequest(router, http.MethodGet, "/api/customers/Alice", "")
	assert.JSONEq(t, `{"id":1,"name":"Alice","points":20}`, w.Body.String())
}

func TestGetCustomer_NotFound(t *testing.T) {
	router, _ := newSQLiteRouter(t)

	w := doRequest(router, http.MethodGet, "/api/customers/Ghost", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Customer not found", decodeError(t, w).Error)
}

func TestReports_CustomFilterValidation(t *testing.T) {
	router, _ := newSQLiteRouter(t)

	for _, path := range []string{"/api/sales_by_type", "/api/sales_over_time", "/api/reports"} {
		t.Run(path, func(t *testing.T) {
			w := doRequest(router, http.MethodGet, path+"?filter=custom&start_date=2024-01-01", "")
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "Both start_date and end_date are required for custom filter", decodeError(t, w).Error)

			w = doRequest(router, http.MethodGet, path+"?filter=custom&end_date=2024-01-01", "")
			assert.Equal(t, http.StatusBadRequest, w.Code)

			w = doRequest(router, http.MethodGet, path+"?filter=weekly", "")
			assert.Equal(t, http.StatusOK, w.Code)

			w = doRequest(router, http.MethodGet, path, "")
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
		})
	}
}

func TestReports_StoreFailure(t *testing.T) {
	router, sqlMock := newMockRouter(t)

	sqlMock.ExpectQuery("SELECT fuel_type").
		WillReturnError(errors.New("no such table: sales"))

	w := doRequest(router, http.MethodGet, "/api/reports?filter=alltime", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "no such table: sales", decodeError(t, w).Error)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestHome(t *testing.T) {
	router, _ := newSQLiteRouter(t)

	w := doRequest(router, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Welcome to Fuel Management App!", w.Body.String())
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}

type stubPinger struct {
	err error
}

func (p stubPinger) PingContext(context.Context) error {
	return p.err
}

func TestHealth(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		w := httptest.NewRecorder()
		NewHealthHandler(stubPinger{}).Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"healthy"}`, w.Body.String())
	})

	t.Run("unhealthy", func(t *testing.T) {
		w := httptest.NewRecorder()
		NewHealthHandler(stubPinger{err: errors.New("dial tcp: connection refused")}).Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.JSONEq(t, `{"status":"unhealthy","error":"dial tcp: connection refused"}`, w.Body.String())
	})
}

func TestCORS(t *testing.T) {
	router, _ := newSQLiteRouter(t)

	t.Run("allowed origin preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/sales", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("foreign origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/reports", nil)
		req.Header.Set("Origin", "https://evil.example")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestMetricsEndpoint(t *testing.T) {
	router, _ := newSQLiteRouter(t)
	doRequest(router, http.MethodGet, "/api/reports", "")

	w := doRequest(router, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "fuel_http_requests_total")
}
