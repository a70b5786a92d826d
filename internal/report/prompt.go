package report

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/fadhlyaj09/Najwa-Pennywise/internal/models"
)

// MonthlyInput carries the aggregate figures the monthly report is built from.
type MonthlyInput struct {
	Income             int64
	Expenses           int64
	SpendingByCategory map[string]int64
	SpendingLimit      int64
	Transactions       []models.Transaction
}

// FormatRupiah renders an amount as Indonesian Rupiah with dot-separated
// thousands, e.g. 1500000 -> "Rp 1.500.000".
func FormatRupiah(amount int64) string {
	digits := strconv.FormatInt(amount, 10)
	negative := strings.HasPrefix(digits, "-")
	if negative {
		digits = digits[1:]
	}

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	if negative {
		return "-Rp " + b.String()
	}
	return "Rp " + b.String()
}

// transactionHistory renders one line per transaction:
// "2025-01-15: -Rp 50.000 (Lending)".
func transactionHistory(transactions []models.Transaction) string {
	lines := make([]string, 0, len(transactions))
	for i := range transactions {
		sign := "+"
		if transactions[i].Kind == models.TransactionKindExpense {
			sign = "-"
		}
		lines = append(lines, fmt.Sprintf("%s: %s%s (%s)",
			transactions[i].Date.Format("2006-01-02"),
			sign,
			FormatRupiah(transactions[i].Amount),
			transactions[i].Category,
		))
	}
	return strings.Join(lines, "\n")
}

// spendingBreakdown renders the per-category spending in a stable order.
func spendingBreakdown(spending map[string]int64) string {
	names := make([]string, 0, len(spending))
	for name := range spending {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, fmt.Sprintf("  - %s: %s", name, FormatRupiah(spending[name])))
	}
	return strings.Join(lines, "\n")
}

// BuildMonthlyPrompt assembles the full prompt for the report generator.
func BuildMonthlyPrompt(input MonthlyInput) string {
	var b strings.Builder

	b.WriteString("You are a personal finance advisor. Create a comprehensive, friendly, and encouraging monthly financial report based on the following data. The currency is Indonesian Rupiah (Rp). The output must be a single block of HTML, without any markdown wrappers.\n\n")

	b.WriteString("Data:\n")
	fmt.Fprintf(&b, "- Income: %s\n", FormatRupiah(input.Income))
	fmt.Fprintf(&b, "- Expenses: %s\n", FormatRupiah(input.Expenses))
	b.WriteString("- Spending by Category:\n")
	b.WriteString(spendingBreakdown(input.SpendingByCategory))
	b.WriteString("\n")
	fmt.Fprintf(&b, "- Spending Limit: %s\n", FormatRupiah(input.SpendingLimit))
	b.WriteString("- Transaction History:\n")
	b.WriteString(transactionHistory(input.Transactions))
	b.WriteString("\n\n")

	b.WriteString(`Structure your HTML report as follows:
1. **Ringkasan Bulan Ini**: Start with a friendly opening. Summarize total income, expenses, and net savings (income - expenses). Mention if they are within their spending limit.
2. **Analisis Pengeluaran**: Create a section to analyze spending.
   - Show a breakdown of spending by category.
   - Identify the top 3 spending categories.
   - Provide specific, actionable insights based on their spending habits. For example, if 'Hangout' is high, suggest cheaper alternatives.
3. **Saran & Rekomendasi**: Offer encouraging advice and concrete suggestions for the next month.
   - Suggest realistic budget adjustments.
   - Give tips to increase savings or reduce specific expenses.
4. **Closing**: End with a motivational and positive closing statement.

Formatting Rules:
- Use HTML tags like <h1>, <h2>, <h3> for titles, <p> for paragraphs, <ul> and <li> for lists, and <strong> or <b> for emphasis.
- Format all currency values using 'Rp' prefix and standard Indonesian number formatting (e.g., Rp 1.500.000).
- Keep the tone encouraging, not judgmental.
`)

	return b.String()
}
