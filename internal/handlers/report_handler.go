package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/fadhlyaj09/Najwa-Pennywise/internal/errors"
	"github.com/fadhlyaj09/Najwa-Pennywise/internal/services"
)

// ReportHandler handles monthly report requests
type ReportHandler struct {
	reportService services.ReportServicer
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService services.ReportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// MonthlyReportResponse represents the generated report
type MonthlyReportResponse struct {
	Year   int    `json:"year"`
	Month  int    `json:"month"`
	Report string `json:"report"`
}

// GetMonthlyReport handles monthly report generation
// @Summary     Generate the monthly report
// @Description Generate a natural-language financial report for one calendar month. Defaults to the current month.
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Param       year query int false "Year (default current)"
// @Param       month query int false "Month 1-12 (default current)"
// @Success     200 {object} MonthlyReportResponse "Generated report"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     502 {object} ErrorResponse "Report generation failed"
// @Router      /reports/monthly [get]
func (h *ReportHandler) GetMonthlyReport(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	now := time.Now()
	year := now.Year()
	month := int(now.Month())

	if v := c.Query("year"); v != "" {
		year, err = strconv.Atoi(v)
		if err != nil || year < 2000 || year > 2100 {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid year"))
			return
		}
	}
	if v := c.Query("month"); v != "" {
		month, err = strconv.Atoi(v)
		if err != nil || month < 1 || month > 12 {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid month"))
			return
		}
	}

	report, err := h.reportService.MonthlyReport(c.Request.Context(), userID, year, time.Month(month))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":   year,
		"month":  month,
		"report": report,
	})
}
