package httpserver

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/ritu-rajkumar/Ri-Eat/internal/domain"
	analyticsrepo "github.com/ritu-rajkumar/Ri-Eat/internal/repository/analytics"
	adminsvc "github.com/ritu-rajkumar/Ri-Eat/internal/service/admin"
	customersvc "github.com/ritu-rajkumar/Ri-Eat/internal/service/customer"
	feedbacksvc "github.com/ritu-rajkumar/Ri-Eat/internal/service/feedback"
	menusvc "github.com/ritu-rajkumar/Ri-Eat/internal/service/menu"
	ordersvc "github.com/ritu-rajkumar/Ri-Eat/internal/service/order"
	rewardsvc "github.com/ritu-rajkumar/Ri-Eat/internal/service/reward"
)

type stubCustomerService struct {
	customer *domain.Customer
	err      error
}

func (s *stubCustomerService) Create(_ context.Context, _ customersvc.CreateInput) (*domain.Customer, error) {
	return s.customer, s.err
}

func (s *stubCustomerService) Get(_ context.Context, _ string) (*domain.Customer, error) {
	return s.customer, s.err
}

func (s *stubCustomerService) List(_ context.Context, _, _ string) ([]domain.Customer, error) {
	return nil, s.err
}

func (s *stubCustomerService) Update(_ context.Context, _ string, _ customersvc.UpdateInput) (*domain.Customer, error) {
	return s.customer, s.err
}

func (s *stubCustomerService) Delete(_ context.Context, _ string) error {
	return s.err
}

type stubMenuService struct {
	item *domain.MenuItem
	err  error
}

func (s *stubMenuService) Create(_ context.Context, _ menusvc.Input) (*domain.MenuItem, error) {
	return s.item, s.err
}

func (s *stubMenuService) Get(_ context.Context, _ string) (*domain.MenuItem, error) {
	return s.item, s.err
}

func (s *stubMenuService) List(_ context.Context) ([]domain.MenuItem, error) {
	return nil, s.err
}

func (s *stubMenuService) ListPublic(_ context.Context) ([]domain.MenuItem, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []domain.MenuItem{{ID: "m1", Name: "Chatpata Bhujia Sandwich", PriceCents: 3900}}, nil
}

func (s *stubMenuService) Update(_ context.Context, _ string, _ menusvc.Input) (*domain.MenuItem, error) {
	return s.item, s.err
}

func (s *stubMenuService) Delete(_ context.Context, _ string) error {
	return s.err
}

type stubOrderService struct {
	order *domain.Order
	err   error
}

func (s *stubOrderService) Create(_ context.Context, _ ordersvc.Input) (*domain.Order, error) {
	return s.order, s.err
}

func (s *stubOrderService) Get(_ context.Context, _ string) (*domain.Order, error) {
	return s.order, s.err
}

func (s *stubOrderService) List(_ context.Context, _ string) ([]domain.Order, error) {
	return nil, s.err
}

func (s *stubOrderService) Update(_ context.Context, _ string, _ ordersvc.Input) (*domain.Order, error) {
	return s.order, s.err
}

func (s *stubOrderService) Delete(_ context.Context, _ string) error {
	return s.err
}

type stubRewardService struct {
	snapshot *rewardsvc.Snapshot
	claim    *domain.RewardClaim
	err      error
}

func (s *stubRewardService) Lookup(_ context.Context, _ string) (*rewardsvc.Snapshot, error) {
	return s.snapshot, s.err
}

func (s *stubRewardService) Submit(_ context.Context, _ rewardsvc.SubmitInput) (*domain.RewardClaim, error) {
	return s.claim, s.err
}

func (s *stubRewardService) Complete(_ context.Context, _ string, _ int) (*domain.RewardClaim, error) {
	return s.claim, s.err
}

func (s *stubRewardService) GetClaim(_ context.Context, _ string) (*domain.RewardClaim, error) {
	return s.claim, s.err
}

func (s *stubRewardService) ListClaims(_ context.Context, _, _ string) ([]domain.RewardClaim, error) {
	return nil, s.err
}

type stubFeedbackService struct {
	fb  *domain.Feedback
	err error
}

func (s *stubFeedbackService) Create(_ context.Context, _ feedbacksvc.Input) (*domain.Feedback, error) {
	return s.fb, s.err
}

func (s *stubFeedbackService) List(_ context.Context) ([]domain.Feedback, error) {
	return nil, s.err
}

type stubAnalyticsService struct {
	err       error
	lastLimit int
}

func (s *stubAnalyticsService) TopItems(_ context.Context) ([]analyticsrepo.TopItem, error) {
	return nil, s.err
}

func (s *stubAnalyticsService) Summary(_ context.Context) (*analyticsrepo.Summary, error) {
	return &analyticsrepo.Summary{TotalCustomers: 2}, s.err
}

func (s *stubAnalyticsService) SalesDaily(_ context.Context, _ int) ([]analyticsrepo.DailySales, error) {
	return nil, s.err
}

func (s *stubAnalyticsService) TopCustomers(_ context.Context, limit int) ([]analyticsrepo.TopCustomer, error) {
	s.lastLimit = limit
	return nil, s.err
}

type stubAdminService struct {
	session *adminsvc.Session
	admin   *domain.Admin
	err     error
}

func (s *stubAdminService) Login(_ context.Context, _, _ string) (*adminsvc.Session, error) {
	return s.session, s.err
}

func (s *stubAdminService) Logout(_ context.Context, _ string) error {
	return s.err
}

func (s *stubAdminService) Authenticate(_ context.Context, token string) (*domain.Admin, error) {
	if token != "good-token" {
		return nil, domain.ErrInvalidCredentials
	}
	return s.admin, nil
}

func (s *stubAdminService) ChangePassword(_ context.Context, _, _, _ string) error {
	return s.err
}

func (s *stubAdminService) ForgotPassword(_ context.Context, _ string) error {
	return s.err
}

func (s *stubAdminService) ResetPassword(_ context.Context, _, _ string) error {
	return s.err
}

func testRouter(deps Deps) *gin.Engine {
	gin.SetMode(gin.TestMode)
	if deps.Admins == nil {
		deps.Admins = &stubAdminService{admin: &domain.Admin{ID: "a1", Username: "admin"}}
	}
	return buildRouter(log.New(io.Discard, "", 0), nil, deps)
}

func doRequest(router *gin.Engine, method, path, body string, authed bool) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set("Authorization", "Bearer good-token")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	router := testRouter(Deps{Orders: &stubOrderService{}})
	rec := doRequest(router, http.MethodGet, "/api/orders", "", false)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddlewareRejectsBadToken(t *testing.T) {
	router := testRouter(Deps{Orders: &stubOrderService{}})
	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("Authorization", "Bearer nope")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestPublicMenuNeedsNoAuth(t *testing.T) {
	router := testRouter(Deps{Menu: &stubMenuService{}})
	rec := doRequest(router, http.MethodGet, "/api/menu/public", "", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Chatpata Bhujia Sandwich") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestCreateOrder(t *testing.T) {
	router := testRouter(Deps{Orders: &stubOrderService{order: &domain.Order{ID: "o1", TotalCents: 7800}}})
	rec := doRequest(router, http.MethodPost, "/api/orders",
		`{"customer":"c1","items":[{"menuItem":"m1","quantity":2}]}`, true)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestCreateOrderValidationError(t *testing.T) {
	router := testRouter(Deps{Orders: &stubOrderService{err: domain.Invalid("items required")}})
	rec := doRequest(router, http.MethodPost, "/api/orders", `{"customer":"c1","items":[]}`, true)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "items required") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestUpdateOrderNotFound(t *testing.T) {
	router := testRouter(Deps{Orders: &stubOrderService{err: domain.ErrNotFound}})
	rec := doRequest(router, http.MethodPut, "/api/orders/missing",
		`{"customer":"c1","items":[{"menuItem":"m1","quantity":1}]}`, true)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestLoyaltyLookupIsPublic(t *testing.T) {
	router := testRouter(Deps{Rewards: &stubRewardService{snapshot: &rewardsvc.Snapshot{Name: "Sarah", RewardsAvailable: 1}}})
	rec := doRequest(router, http.MethodGet, "/api/loyalty/C004", "", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"rewardsAvailable":1`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestLoyaltyLookupUnknown(t *testing.T) {
	router := testRouter(Deps{Rewards: &stubRewardService{err: domain.ErrNotFound}})
	rec := doRequest(router, http.MethodGet, "/api/loyalty/ghost", "", false)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestSubmitClaimNoRewards(t *testing.T) {
	router := testRouter(Deps{Rewards: &stubRewardService{err: domain.ErrNoRewards}})
	rec := doRequest(router, http.MethodPost, "/api/loyalty/claim",
		`{"customerId":"C004","name":"S","phone":"1","address":"x","experience":"ok"}`, false)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCompleteClaimWithoutBody(t *testing.T) {
	router := testRouter(Deps{Rewards: &stubRewardService{claim: &domain.RewardClaim{ID: "r1", Status: domain.ClaimCompleted}}})
	rec := doRequest(router, http.MethodPatch, "/api/reward-claims/r1/complete", "", true)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), domain.ClaimCompleted) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestMenuDeleteConflict(t *testing.T) {
	router := testRouter(Deps{Menu: &stubMenuService{err: domain.ErrAlreadyExists}})
	rec := doRequest(router, http.MethodDelete, "/api/menu/m1", "", true)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestLoginFailure(t *testing.T) {
	router := testRouter(Deps{Admins: &stubAdminService{err: domain.ErrInvalidCredentials}})
	rec := doRequest(router, http.MethodPost, "/api/admin/login",
		`{"username":"admin","password":"wrong"}`, false)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestTopCustomersForwardsLimit(t *testing.T) {
	analytics := &stubAnalyticsService{}
	router := testRouter(Deps{Analytics: analytics})
	rec := doRequest(router, http.MethodGet, "/api/analytics/top-customers?limit=3", "", true)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if analytics.lastLimit != 3 {
		t.Fatalf("expected limit 3 forwarded, got %d", analytics.lastLimit)
	}
}

func TestResetPasswordBadToken(t *testing.T) {
	router := testRouter(Deps{Admins: &stubAdminService{err: domain.Invalid("invalid or expired token")}})
	rec := doRequest(router, http.MethodPost, "/api/admin/reset-password",
		`{"token":"stale","newPassword":"newpass123"}`, false)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "invalid or expired token") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestInternalErrorIsGeneric(t *testing.T) {
	router := testRouter(Deps{Customers: &stubCustomerService{err: errors.New("pg: connection refused")}})
	rec := doRequest(router, http.MethodGet, "/api/customers/c1", "", true)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "connection refused") {
		t.Fatalf("internal details must not leak: %s", rec.Body.String())
	}
}

func TestHealthz(t *testing.T) {
	router := testRouter(Deps{})
	rec := doRequest(router, http.MethodGet, "/healthz", "", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
