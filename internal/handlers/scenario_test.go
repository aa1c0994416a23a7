package handlers_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/SscSPs/money_ledger/internal/core/services"
	"github.com/SscSPs/money_ledger/internal/handlers"
	"github.com/SscSPs/money_ledger/internal/middleware"
	"github.com/SscSPs/money_ledger/internal/repositories/database/migrations"
	"github.com/SscSPs/money_ledger/internal/repositories/database/sqlite"
	"github.com/SscSPs/money_ledger/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newApp wires the real services over a fresh SQLite database, the way main does.
func newApp(t *testing.T) http.Handler {
	t.Helper()
	return newAppWithLogger(t, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newAppWithLogger(t *testing.T, logger *slog.Logger) http.Handler {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ledger.db")
	_, err := database.MigrateSQLite(path, migrations.FS, migrations.SQLiteDir)
	require.NoError(t, err)
	db, err := database.NewSQLiteDB(context.Background(), path, true)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cfg := testConfig()
	cfg.AuthPassword = "secret"
	container, err := services.NewServiceContainer(cfg, sqlite.NewRepositoryProvider(db))
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger))
	require.NoError(t, handlers.RegisterRoutes(r, cfg, container, nil))
	return middleware.MethodOverride(r)
}

func TestScenario_InsertThenListAndSummarize(t *testing.T) {
	app := newApp(t)
	cookies := loginCookies(t, app)

	w := postForm(app, "/income", url.Values{
		"source": {"Acme"}, "description": {"salary"}, "amount": {"1000.00"}, "date": {"2024-01-15"},
	}, cookies)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/income", w.Header().Get("Location"))

	w = get(app, "/income", cookies)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Acme")
	assert.Contains(t, w.Body.String(), "1000.00")

	w = get(app, "/", cookies)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "<th>Income</th><td class=\"amount\">1000.00</td>")
	assert.Contains(t, body, "<th>Expenditure</th><td class=\"amount\">0.00</td>")
}

func TestScenario_JanuaryReport(t *testing.T) {
	app := newApp(t)
	cookies := loginCookies(t, app)

	for _, rec := range []struct{ typ, source, amount, date string }{
		{"income", "Acme", "500", "2024-01-10"},
		{"expenditure", "Grocer", "200", "2024-01-20"},
		{"income", "Acme", "999", "2024-02-01"},
	} {
		w := postForm(app, "/"+rec.typ, url.Values{
			"source": {rec.source}, "description": {"x"}, "amount": {rec.amount}, "date": {rec.date},
		}, cookies)
		require.Equal(t, http.StatusFound, w.Code)
	}

	w := get(app, "/report?from=2024-01-01&to=2024-01-31", cookies)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "<th>Income</th><td class=\"amount\">500.00</td>")
	assert.Contains(t, body, "<th>Expenditure</th><td class=\"amount\">200.00</td>")
	assert.Contains(t, body, "Grocer")
	assert.NotContains(t, body, "999.00")
}

func TestScenario_NegativeAmountNeverStored(t *testing.T) {
	app := newApp(t)
	cookies := loginCookies(t, app)

	w := postForm(app, "/expenditure", url.Values{
		"source": {"Shop"}, "description": {"refund"}, "amount": {"-5"}, "date": {"2024-01-15"},
	}, cookies)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Amount cannot be negative", w.Body.String())

	w = get(app, "/expenditure", cookies)
	assert.NotContains(t, w.Body.String(), "Shop")
}

func TestScenario_EditUpdateDelete(t *testing.T) {
	app := newApp(t)
	cookies := loginCookies(t, app)

	w := postForm(app, "/expenditure", url.Values{
		"source": {"Grocer"}, "description": {"food"}, "amount": {"80.25"}, "date": {"2024-01-20"},
	}, cookies)
	require.Equal(t, http.StatusFound, w.Code)

	w = get(app, "/expenditure/1/edit", cookies)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `value="80.25"`)

	// Same id under the other type is not found.
	w = get(app, "/income/1/edit", cookies)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Income record not found", w.Body.String())

	w = postForm(app, "/expenditure/1?_method=PUT", url.Values{
		"source": {"Market"}, "description": {"food"}, "amount": {"90"}, "date": {"2024-01-21"},
	}, cookies)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/expenditure", w.Header().Get("Location"))

	w = get(app, "/expenditure", cookies)
	assert.Contains(t, w.Body.String(), "Market")
	assert.Contains(t, w.Body.String(), "90.00")

	w = postForm(app, "/delete/1", url.Values{}, cookies)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	w = get(app, "/expenditure/1/edit", cookies)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Expenditure record not found", w.Body.String())
}

func TestScenario_WrongPassword(t *testing.T) {
	app := newApp(t)

	w := postForm(app, "/login", url.Values{"username": {"owner"}, "password": {"wrong"}}, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")

	w = get(app, "/", w.Result().Cookies())
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestScenario_SubmittedTextIsKeptAndReportable(t *testing.T) {
	app := newApp(t)
	cookies := loginCookies(t, app)

	w := postForm(app, "/income", url.Values{
		"source": {"  Acme  "}, "description": {" salary "}, "amount": {"42"}, "date": {"2024-01-15"},
	}, cookies)
	require.Equal(t, http.StatusFound, w.Code)

	w = get(app, "/income/1/edit", cookies)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `value="  Acme  "`)
	assert.Contains(t, w.Body.String(), `value=" salary "`)

	query := url.Values{
		"from": {"2024-01-01"}, "to": {"2024-01-31"},
		"sourceType": {"income"}, "sourceName": {"  Acme  "},
	}
	w = get(app, "/report?"+query.Encode(), cookies)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "<td>  Acme  </td>")
	assert.NotContains(t, body, "No records in this range.")

	query.Set("sourceName", "Acme")
	w = get(app, "/report?"+query.Encode(), cookies)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No records in this range.")
}

func TestScenario_CreateLogsOnce(t *testing.T) {
	var logs bytes.Buffer
	app := newAppWithLogger(t, slog.New(slog.NewTextHandler(&logs, nil)))
	cookies := loginCookies(t, app)

	w := postForm(app, "/expenditure", url.Values{
		"source": {"Grocer"}, "description": {"food"}, "amount": {"12"}, "date": {"2024-01-20"},
	}, cookies)
	require.Equal(t, http.StatusFound, w.Code)

	assert.Equal(t, 1, strings.Count(logs.String(), `msg="Record created"`))
}
