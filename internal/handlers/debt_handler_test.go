package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/fadhlyaj09/Najwa-Pennywise/internal/errors"
	"github.com/fadhlyaj09/Najwa-Pennywise/internal/models"
	"github.com/fadhlyaj09/Najwa-Pennywise/internal/validator"
)

// --- mock services ---

type mockDebtService struct {
	createDebtFn        func(ctx context.Context, userID, debtorName string, amount int64, description string, dueDate time.Time) (*models.Debt, error)
	settleDebtFn        func(ctx context.Context, userID, debtID string) (*models.Debt, error)
	deleteDebtFn        func(ctx context.Context, userID, debtID string) error
	deleteTransactionFn func(ctx context.Context, userID, transactionID string) error
	listDebtsFn         func(ctx context.Context, userID string) ([]models.Debt, error)
}

func (m *mockDebtService) CreateDebt(ctx context.Context, userID, debtorName string, amount int64, description string, dueDate time.Time) (*models.Debt, error) {
	if m.createDebtFn != nil {
		return m.createDebtFn(ctx, userID, debtorName, amount, description, dueDate)
	}
	return &models.Debt{}, nil
}

func (m *mockDebtService) SettleDebt(ctx context.Context, userID, debtID string) (*models.Debt, error) {
	if m.settleDebtFn != nil {
		return m.settleDebtFn(ctx, userID, debtID)
	}
	return &models.Debt{}, nil
}

func (m *mockDebtService) DeleteDebt(ctx context.Context, userID, debtID string) error {
	if m.deleteDebtFn != nil {
		return m.deleteDebtFn(ctx, userID, debtID)
	}
	return nil
}

func (m *mockDebtService) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	if m.deleteTransactionFn != nil {
		return m.deleteTransactionFn(ctx, userID, transactionID)
	}
	return nil
}

func (m *mockDebtService) ListDebts(ctx context.Context, userID string) ([]models.Debt, error) {
	if m.listDebtsFn != nil {
		return m.listDebtsFn(ctx, userID)
	}
	return nil, nil
}

// --- test helpers ---

const testUserID = "0195d4a2-0000-7000-8000-000000000001"

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

func injectUserID(uid string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", uid)
		c.Next()
	}
}

func setupDebtRouter(handler *DebtHandler) *gin.Engine {
	r := gin.New()
	r.POST("/debts", injectUserID(testUserID), handler.CreateDebt)
	r.GET("/debts", injectUserID(testUserID), handler.GetUserDebts)
	r.POST("/debts/:id/settle", injectUserID(testUserID), handler.SettleDebt)
	r.DELETE("/debts/:id", injectUserID(testUserID), handler.DeleteDebt)
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

// --- tests ---

func TestCreateDebtHandler(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		var gotDebtor string
		var gotAmount int64
		mock := &mockDebtService{
			createDebtFn: func(_ context.Context, userID, debtorName string, amount int64, _ string, _ time.Time) (*models.Debt, error) {
				if userID != testUserID {
					t.Errorf("expected user %s, got %s", testUserID, userID)
				}
				gotDebtor = debtorName
				gotAmount = amount
				return &models.Debt{DebtorName: debtorName, Amount: amount, Status: models.DebtStatusUnpaid}, nil
			},
		}
		r := setupDebtRouter(NewDebtHandler(mock))

		rec := doRequest(r, http.MethodPost, "/debts",
			`{"debtor_name":"Budi","amount":50000,"description":"lunch","due_date":"2025-04-01"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotDebtor != "Budi" || gotAmount != 50000 {
			t.Errorf("service called with debtor=%q amount=%d", gotDebtor, gotAmount)
		}
	})

	t.Run("missing_debtor_name", func(t *testing.T) {
		r := setupDebtRouter(NewDebtHandler(&mockDebtService{}))

		rec := doRequest(r, http.MethodPost, "/debts", `{"amount":50000}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("bad_due_date", func(t *testing.T) {
		r := setupDebtRouter(NewDebtHandler(&mockDebtService{}))

		rec := doRequest(r, http.MethodPost, "/debts",
			`{"debtor_name":"Budi","amount":50000,"due_date":"01-04-2025"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestSettleDebtHandler(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		mock := &mockDebtService{
			settleDebtFn: func(_ context.Context, _, debtID string) (*models.Debt, error) {
				repayment := "0195d4a2-0000-7000-8000-00000000000f"
				return &models.Debt{
					Base:                   models.Base{ID: debtID},
					Status:                 models.DebtStatusPaid,
					RepaymentTransactionID: &repayment,
				}, nil
			},
		}
		r := setupDebtRouter(NewDebtHandler(mock))

		rec := doRequest(r, http.MethodPost, "/debts/abc/settle", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}

		var resp struct {
			Debt models.Debt `json:"debt"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}
		if resp.Debt.Status != models.DebtStatusPaid {
			t.Errorf("expected paid debt in response, got %s", resp.Debt.Status)
		}
	})

	t.Run("already_paid", func(t *testing.T) {
		mock := &mockDebtService{
			settleDebtFn: func(_ context.Context, _, _ string) (*models.Debt, error) {
				return nil, apperrors.ErrDebtAlreadyPaid
			},
		}
		r := setupDebtRouter(NewDebtHandler(mock))

		rec := doRequest(r, http.MethodPost, "/debts/abc/settle", "")
		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		mock := &mockDebtService{
			settleDebtFn: func(_ context.Context, _, _ string) (*models.Debt, error) {
				return nil, apperrors.ErrDebtNotFound
			},
		}
		r := setupDebtRouter(NewDebtHandler(mock))

		rec := doRequest(r, http.MethodPost, "/debts/abc/settle", "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestDeleteDebtHandler(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		var deletedID string
		mock := &mockDebtService{
			deleteDebtFn: func(_ context.Context, _, debtID string) error {
				deletedID = debtID
				return nil
			},
		}
		r := setupDebtRouter(NewDebtHandler(mock))

		rec := doRequest(r, http.MethodDelete, "/debts/abc", "")
		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", rec.Code)
		}
		if deletedID != "abc" {
			t.Errorf("expected debt abc deleted, got %q", deletedID)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		mock := &mockDebtService{
			deleteDebtFn: func(_ context.Context, _, _ string) error {
				return apperrors.ErrDebtNotFound
			},
		}
		r := setupDebtRouter(NewDebtHandler(mock))

		rec := doRequest(r, http.MethodDelete, "/debts/abc", "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}
