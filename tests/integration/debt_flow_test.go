package integration

import (
	"fmt"
	"net/http"
	"testing"
)

// summaryOf fetches the current summary for the token's user.
func summaryOf(t *testing.T, app *testApp, token string) map[string]interface{} {
	t.Helper()
	rec := app.request("GET", "/api/v1/summary", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("summary failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)
}

func TestDebtFlow_LendSettleDelete(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "debt@test.com", "password123")

	// Lend 50,000 to Budi.
	rec := app.request("POST", "/api/v1/debts",
		`{"debtor_name":"Budi","amount":50000,"description":"lunch","due_date":"2025-04-01"}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create debt failed: %d %s", rec.Code, rec.Body.String())
	}
	debt := parseJSON(t, rec)["debt"].(map[string]interface{})
	debtID := debt["id"].(string)
	lendingTxID := debt["lending_transaction_id"].(string)
	if debt["status"] != "unpaid" {
		t.Errorf("expected unpaid debt, got %v", debt["status"])
	}

	// The lending expense shows up in the ledger and the summary.
	summary := summaryOf(t, app, token)
	if summary["total_expenses"].(float64) != 50000 {
		t.Errorf("expected expenses 50000, got %v", summary["total_expenses"])
	}
	if summary["total_unpaid_debt"].(float64) != 50000 {
		t.Errorf("expected unpaid debt 50000, got %v", summary["total_unpaid_debt"])
	}

	// Settle the debt.
	rec = app.request("POST", "/api/v1/debts/"+debtID+"/settle", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("settle failed: %d %s", rec.Code, rec.Body.String())
	}
	settled := parseJSON(t, rec)["debt"].(map[string]interface{})
	if settled["status"] != "paid" {
		t.Errorf("expected paid debt, got %v", settled["status"])
	}

	summary = summaryOf(t, app, token)
	if summary["total_income"].(float64) != 50000 {
		t.Errorf("expected income 50000 after settling, got %v", summary["total_income"])
	}
	if summary["total_unpaid_debt"].(float64) != 0 {
		t.Errorf("expected no unpaid debt after settling, got %v", summary["total_unpaid_debt"])
	}

	// Settling again is rejected.
	rec = app.request("POST", "/api/v1/debts/"+debtID+"/settle", "", token)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for double settle, got %d", rec.Code)
	}

	// Deleting the debt removes both paired transactions.
	rec = app.request("DELETE", "/api/v1/debts/"+debtID, "", token)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete debt failed: %d %s", rec.Code, rec.Body.String())
	}

	summary = summaryOf(t, app, token)
	if summary["total_income"].(float64) != 0 || summary["total_expenses"].(float64) != 0 {
		t.Errorf("expected a clean ledger after deleting the debt, got %v", summary)
	}

	rec = app.request("GET", "/api/v1/transactions/"+lendingTxID, "", token)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected lending transaction to be gone, got %d", rec.Code)
	}
}

func TestDebtFlow_DeleteLendingTransactionCascades(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "cascade@test.com", "password123")

	rec := app.request("POST", "/api/v1/debts",
		`{"debtor_name":"Sari","amount":75000}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create debt failed: %d %s", rec.Code, rec.Body.String())
	}
	debt := parseJSON(t, rec)["debt"].(map[string]interface{})
	lendingTxID := debt["lending_transaction_id"].(string)

	// Deleting the lending transaction from the general list deletes the debt.
	rec = app.request("DELETE", "/api/v1/transactions/"+lendingTxID, "", token)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete transaction failed: %d %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/api/v1/debts", "", token)
	debts := parseJSON(t, rec)["debts"].([]interface{})
	if len(debts) != 0 {
		t.Errorf("expected no debts after cascade, got %d", len(debts))
	}
}

func TestDebtFlow_DeleteRepaymentRevertsDebt(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "revert@test.com", "password123")

	rec := app.request("POST", "/api/v1/debts",
		`{"debtor_name":"Sari","amount":75000}`, token)
	debt := parseJSON(t, rec)["debt"].(map[string]interface{})
	debtID := debt["id"].(string)

	rec = app.request("POST", fmt.Sprintf("/api/v1/debts/%s/settle", debtID), "", token)
	settled := parseJSON(t, rec)["debt"].(map[string]interface{})
	repaymentTxID := settled["repayment_transaction_id"].(string)

	// Deleting the repayment transaction reverts the debt to unpaid.
	rec = app.request("DELETE", "/api/v1/transactions/"+repaymentTxID, "", token)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete repayment failed: %d %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/api/v1/debts", "", token)
	debts := parseJSON(t, rec)["debts"].([]interface{})
	if len(debts) != 1 {
		t.Fatalf("expected the debt to survive, got %d", len(debts))
	}
	reverted := debts[0].(map[string]interface{})
	if reverted["status"] != "unpaid" {
		t.Errorf("expected unpaid status after revert, got %v", reverted["status"])
	}
	if _, ok := reverted["repayment_transaction_id"]; ok && reverted["repayment_transaction_id"] != nil {
		t.Errorf("expected repayment link cleared, got %v", reverted["repayment_transaction_id"])
	}
}
