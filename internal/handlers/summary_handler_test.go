package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/fadhlyaj09/Najwa-Pennywise/internal/services"
)

type mockSummaryService struct {
	getSummaryFn       func(ctx context.Context, userID string) (*services.Summary, error)
	getSpendingLimitFn func(ctx context.Context, userID string) (int64, error)
	setSpendingLimitFn func(ctx context.Context, userID string, limit int64) error
}

func (m *mockSummaryService) GetSummary(ctx context.Context, userID string) (*services.Summary, error) {
	if m.getSummaryFn != nil {
		return m.getSummaryFn(ctx, userID)
	}
	return &services.Summary{}, nil
}

func (m *mockSummaryService) GetSpendingLimit(ctx context.Context, userID string) (int64, error) {
	if m.getSpendingLimitFn != nil {
		return m.getSpendingLimitFn(ctx, userID)
	}
	return 0, nil
}

func (m *mockSummaryService) SetSpendingLimit(ctx context.Context, userID string, limit int64) error {
	if m.setSpendingLimitFn != nil {
		return m.setSpendingLimitFn(ctx, userID, limit)
	}
	return nil
}

func setupSummaryRouter(handler *SummaryHandler) *gin.Engine {
	r := gin.New()
	r.GET("/summary", injectUserID(testUserID), handler.GetSummary)
	r.GET("/settings/spending-limit", injectUserID(testUserID), handler.GetSpendingLimit)
	r.PUT("/settings/spending-limit", injectUserID(testUserID), handler.UpdateSpendingLimit)
	return r
}

func TestGetSummaryHandler(t *testing.T) {
	mock := &mockSummaryService{
		getSummaryFn: func(_ context.Context, _ string) (*services.Summary, error) {
			return &services.Summary{
				TotalIncome:   8000000,
				TotalExpenses: 250000,
				Balance:       7750000,
				SpendingByCategory: map[string]int64{
					"Lunch": 250000,
				},
				SpendingLimit: 5000000,
			}, nil
		},
	}
	r := setupSummaryRouter(NewSummaryHandler(mock))

	rec := doRequest(r, http.MethodGet, "/summary", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var summary services.Summary
	if err := json.Unmarshal(rec.Body.Bytes(), &summary); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if summary.Balance != 7750000 {
		t.Errorf("expected balance 7750000, got %d", summary.Balance)
	}
}

func TestUpdateSpendingLimitHandler(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		var gotLimit int64 = -1
		mock := &mockSummaryService{
			setSpendingLimitFn: func(_ context.Context, _ string, limit int64) error {
				gotLimit = limit
				return nil
			},
		}
		r := setupSummaryRouter(NewSummaryHandler(mock))

		rec := doRequest(r, http.MethodPut, "/settings/spending-limit", `{"spending_limit":3000000}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotLimit != 3000000 {
			t.Errorf("expected limit 3000000, got %d", gotLimit)
		}
	})

	t.Run("zero_is_valid", func(t *testing.T) {
		var gotLimit int64 = -1
		mock := &mockSummaryService{
			setSpendingLimitFn: func(_ context.Context, _ string, limit int64) error {
				gotLimit = limit
				return nil
			},
		}
		r := setupSummaryRouter(NewSummaryHandler(mock))

		rec := doRequest(r, http.MethodPut, "/settings/spending-limit", `{"spending_limit":0}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotLimit != 0 {
			t.Errorf("expected limit 0, got %d", gotLimit)
		}
	})

	t.Run("negative_is_rejected", func(t *testing.T) {
		r := setupSummaryRouter(NewSummaryHandler(&mockSummaryService{}))

		rec := doRequest(r, http.MethodPut, "/settings/spending-limit", `{"spending_limit":-1}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("missing_field", func(t *testing.T) {
		r := setupSummaryRouter(NewSummaryHandler(&mockSummaryService{}))

		rec := doRequest(r, http.MethodPut, "/settings/spending-limit", `{}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
