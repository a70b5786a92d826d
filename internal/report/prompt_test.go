package report

import (
	"strings"
	"testing"
	"time"

	"github.com/fadhlyaj09/Najwa-Pennywise/internal/models"
)

func TestFormatRupiah(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
		want   string
	}{
		{name: "zero", amount: 0, want: "Rp 0"},
		{name: "under a thousand", amount: 950, want: "Rp 950"},
		{name: "thousands", amount: 50000, want: "Rp 50.000"},
		{name: "millions", amount: 1500000, want: "Rp 1.500.000"},
		{name: "negative", amount: -250000, want: "-Rp 250.000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatRupiah(tt.amount); got != tt.want {
				t.Errorf("FormatRupiah(%d) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}

func TestBuildMonthlyPrompt(t *testing.T) {
	date := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	input := MonthlyInput{
		Income:   8000000,
		Expenses: 3250000,
		SpendingByCategory: map[string]int64{
			"Hangout": 1250000,
			"Lunch":   2000000,
		},
		SpendingLimit: 5000000,
		Transactions: []models.Transaction{
			{
				Kind:     models.TransactionKindExpense,
				Category: "Lunch",
				Amount:   50000,
				Date:     date,
			},
			{
				Kind:     models.TransactionKindIncome,
				Category: "Salary",
				Amount:   8000000,
				Date:     date,
			},
		},
	}

	prompt := BuildMonthlyPrompt(input)

	wantFragments := []string{
		"- Income: Rp 8.000.000",
		"- Expenses: Rp 3.250.000",
		"- Spending Limit: Rp 5.000.000",
		"  - Hangout: Rp 1.250.000",
		"  - Lunch: Rp 2.000.000",
		"2025-01-15: -Rp 50.000 (Lunch)",
		"2025-01-15: +Rp 8.000.000 (Salary)",
		"Ringkasan Bulan Ini",
		"Indonesian Rupiah",
	}
	for _, fragment := range wantFragments {
		if !strings.Contains(prompt, fragment) {
			t.Errorf("prompt is missing %q", fragment)
		}
	}

	// Category breakdown must be stable across runs.
	if BuildMonthlyPrompt(input) != prompt {
		t.Error("expected identical prompts for identical input")
	}
}
