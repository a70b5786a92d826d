package services

import (
	"context"
	"sort"
	"time"

	apperrors "github.com/fadhlyaj09/Najwa-Pennywise/internal/errors"
	"github.com/fadhlyaj09/Najwa-Pennywise/internal/ledger"
	"github.com/fadhlyaj09/Najwa-Pennywise/internal/logger"
	"github.com/fadhlyaj09/Najwa-Pennywise/internal/models"
	"github.com/fadhlyaj09/Najwa-Pennywise/internal/report"
)

// reportService assembles one month of ledger data into a prompt and hands it
// to the text generator.
type reportService struct {
	store     ledger.Store
	summaries SummaryServicer
	generator report.Generator
}

// NewReportService creates a new ReportServicer.
func NewReportService(store ledger.Store, summaries SummaryServicer, generator report.Generator) ReportServicer {
	return &reportService{
		store:     store,
		summaries: summaries,
		generator: generator,
	}
}

// MonthlyReport generates the narrative report for the given calendar month.
func (s *reportService) MonthlyReport(ctx context.Context, userID string, year int, month time.Month) (string, error) {
	transactions, err := s.store.ListTransactions(ctx, userID)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	monthly := filterByMonth(transactions, year, month)
	sort.SliceStable(monthly, func(i, j int) bool {
		return monthly[i].Date.Before(monthly[j].Date)
	})

	limit, err := s.summaries.GetSpendingLimit(ctx, userID)
	if err != nil {
		return "", err
	}

	summary := Summarize(monthly, nil)
	prompt := report.BuildMonthlyPrompt(report.MonthlyInput{
		Income:             summary.TotalIncome,
		Expenses:           summary.TotalExpenses,
		SpendingByCategory: summary.SpendingByCategory,
		SpendingLimit:      limit,
		Transactions:       monthly,
	})

	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		logger.Get().Errorw("report generation failed",
			"user_id", userID,
			"year", year,
			"month", int(month),
			"error", err,
		)
		return "", apperrors.Wrap(apperrors.ErrReportFailed, err)
	}
	return text, nil
}

// filterByMonth keeps the transactions dated inside the given calendar month.
func filterByMonth(transactions []models.Transaction, year int, month time.Month) []models.Transaction {
	monthly := make([]models.Transaction, 0, len(transactions))
	for i := range transactions {
		if transactions[i].Date.Year() == year && transactions[i].Date.Month() == month {
			monthly = append(monthly, transactions[i])
		}
	}
	return monthly
}
