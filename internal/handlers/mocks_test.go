package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/money_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/money_ledger/internal/core/ports/services"
	"github.com/SscSPs/money_ledger/internal/dto"
	"github.com/SscSPs/money_ledger/internal/handlers"
	"github.com/SscSPs/money_ledger/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mock RecordService ---
type MockRecordService struct {
	mock.Mock
}

func (m *MockRecordService) ListRecords(ctx context.Context) ([]domain.Record, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Record), args.Error(1)
}

func (m *MockRecordService) ListRecordsByType(ctx context.Context, recordType domain.RecordType) ([]domain.Record, error) {
	args := m.Called(ctx, recordType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Record), args.Error(1)
}

func (m *MockRecordService) GetRecord(ctx context.Context, id int64, recordType domain.RecordType) (*domain.Record, error) {
	args := m.Called(ctx, id, recordType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Record), args.Error(1)
}

func (m *MockRecordService) CreateRecord(ctx context.Context, recordType domain.RecordType, req dto.RecordRequest) (*domain.Record, error) {
	args := m.Called(ctx, recordType, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Record), args.Error(1)
}

func (m *MockRecordService) UpdateRecord(ctx context.Context, id int64, recordType domain.RecordType, req dto.RecordRequest) error {
	args := m.Called(ctx, id, recordType, req)
	return args.Error(0)
}

func (m *MockRecordService) DeleteRecord(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ portssvc.RecordSvcFacade = (*MockRecordService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) Summary(ctx context.Context) (*domain.Summary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Summary), args.Error(1)
}

func (m *MockReportingService) Report(ctx context.Context, params domain.ReportParams) (*domain.Report, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Report), args.Error(1)
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Authenticate(ctx context.Context, username, password string) error {
	args := m.Called(ctx, username, password)
	return args.Error(0)
}

var _ portssvc.AuthService = (*MockAuthService)(nil)

// --- Helpers ---

func testConfig() *config.Config {
	return &config.Config{
		SessionSecret:  "test-session-secret",
		SessionName:    "ledger_session",
		SessionMaxAge:  time.Hour,
		AuthUsername:   "owner",
		LoginRateLimit: "1000-M",
	}
}

func newRouter(t *testing.T, services *portssvc.ServiceContainer) *gin.Engine {
	t.Helper()
	return newRouterWithConfig(t, testConfig(), services)
}

func newRouterWithConfig(t *testing.T, cfg *config.Config, services *portssvc.ServiceContainer) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	require.NoError(t, handlers.RegisterRoutes(r, cfg, services, nil))
	return r
}

// loginCookies logs in through POST /login. The auth service must accept
// owner/secret.
func loginCookies(t *testing.T, r http.Handler) []*http.Cookie {
	t.Helper()
	w := postForm(r, "/login", url.Values{"username": {"owner"}, "password": {"secret"}}, nil)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/", w.Header().Get("Location"))
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies
}

func get(r http.Handler, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postForm(r http.Handler, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	return sendForm(r, http.MethodPost, path, form, cookies)
}

func sendForm(r http.Handler, method, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
