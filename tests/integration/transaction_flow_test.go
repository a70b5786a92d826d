package integration

import (
	"net/http"
	"testing"
)

func TestTransactionFlow_CreateListDelete(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "tx@test.com", "password123")

	// Record an expense with a brand-new category name.
	rec := app.request("POST", "/api/v1/transactions",
		`{"kind":"expense","category":"Pet Food","amount":20000,"date":"2025-03-10"}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create transaction failed: %d %s", rec.Code, rec.Body.String())
	}
	tx := parseJSON(t, rec)["transaction"].(map[string]interface{})
	txID := tx["id"].(string)

	// The category was created on the fly.
	rec = app.request("GET", "/api/v1/categories?kind=expense", "", token)
	categories := parseJSON(t, rec)["categories"].([]interface{})
	found := false
	for _, c := range categories {
		if c.(map[string]interface{})["name"] == "Pet Food" {
			found = true
		}
	}
	if !found {
		t.Error("expected the Pet Food category to be auto-created")
	}

	// List shows the transaction.
	rec = app.request("GET", "/api/v1/transactions?page=1&page_size=10", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("list failed: %d %s", rec.Code, rec.Body.String())
	}
	page := parseJSON(t, rec)
	if page["total_items"].(float64) != 1 {
		t.Errorf("expected 1 transaction, got %v", page["total_items"])
	}

	// Delete it.
	rec = app.request("DELETE", "/api/v1/transactions/"+txID, "", token)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete failed: %d %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/api/v1/transactions/"+txID, "", token)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", rec.Code)
	}
}

func TestTransactionFlow_ValidationErrors(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "txval@test.com", "password123")

	cases := []struct {
		name string
		body string
	}{
		{name: "bad_kind", body: `{"kind":"transfer","category":"Lunch","amount":10000}`},
		{name: "zero_amount", body: `{"kind":"expense","category":"Lunch","amount":0}`},
		{name: "missing_category", body: `{"kind":"expense","amount":10000}`},
		{name: "bad_date", body: `{"kind":"expense","category":"Lunch","amount":10000,"date":"10/03/2025"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := app.request("POST", "/api/v1/transactions", tc.body, token)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestSpendingLimitFlow(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "limit@test.com", "password123")

	// Default limit applies before any update.
	rec := app.request("GET", "/api/v1/settings/spending-limit", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("get limit failed: %d %s", rec.Code, rec.Body.String())
	}
	if got := parseJSON(t, rec)["spending_limit"].(float64); got != 5000000 {
		t.Errorf("expected default limit 5000000, got %v", got)
	}

	rec = app.request("PUT", "/api/v1/settings/spending-limit",
		`{"spending_limit":3000000}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("set limit failed: %d %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/api/v1/settings/spending-limit", "", token)
	if got := parseJSON(t, rec)["spending_limit"].(float64); got != 3000000 {
		t.Errorf("expected limit 3000000, got %v", got)
	}

	// The summary carries the updated limit.
	summary := summaryOf(t, app, token)
	if summary["spending_limit"].(float64) != 3000000 {
		t.Errorf("expected summary limit 3000000, got %v", summary["spending_limit"])
	}
}

func TestMonthlyReportFlow(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "report@test.com", "password123")

	rec := app.request("POST", "/api/v1/transactions",
		`{"kind":"expense","category":"Lunch","amount":35000,"date":"2025-03-10"}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create transaction failed: %d %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/api/v1/reports/monthly?year=2025&month=3", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("report failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	if result["report"] != "<h1>Laporan Bulanan</h1>" {
		t.Errorf("expected generated report, got %v", result["report"])
	}
	if result["month"].(float64) != 3 {
		t.Errorf("expected month 3, got %v", result["month"])
	}

	rec = app.request("GET", "/api/v1/reports/monthly?year=2025&month=13", "", token)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for month 13, got %d", rec.Code)
	}
}
