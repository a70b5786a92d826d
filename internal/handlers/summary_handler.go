package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/fadhlyaj09/Najwa-Pennywise/internal/errors"
	"github.com/fadhlyaj09/Najwa-Pennywise/internal/services"
)

// SummaryHandler handles summary and spending limit requests
type SummaryHandler struct {
	summaryService services.SummaryServicer
}

// NewSummaryHandler creates a new SummaryHandler
func NewSummaryHandler(summaryService services.SummaryServicer) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

// UpdateSpendingLimitRequest represents the request payload for setting the limit
type UpdateSpendingLimitRequest struct {
	SpendingLimit *int64 `json:"spending_limit" binding:"required,gte=0"`
}

// GetSummary handles summary retrieval
// @Summary     Get financial summary
// @Description Get totals, per-category spending, unpaid debt, and the spending limit
// @Tags        summary
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.Summary "Summary"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /summary [get]
func (h *SummaryHandler) GetSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.summaryService.GetSummary(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetSpendingLimit handles spending limit retrieval
// @Summary     Get the spending limit
// @Description Get the authenticated user's monthly spending limit
// @Tags        summary
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]int64 "Spending limit"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /settings/spending-limit [get]
func (h *SummaryHandler) GetSpendingLimit(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	limit, err := h.summaryService.GetSpendingLimit(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"spending_limit": limit})
}

// UpdateSpendingLimit handles spending limit updates
// @Summary     Set the spending limit
// @Description Set the authenticated user's monthly spending limit
// @Tags        summary
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body UpdateSpendingLimitRequest true "New spending limit"
// @Success     200 {object} map[string]int64 "Updated spending limit"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /settings/spending-limit [put]
func (h *SummaryHandler) UpdateSpendingLimit(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateSpendingLimitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := h.summaryService.SetSpendingLimit(c.Request.Context(), userID, *req.SpendingLimit); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"spending_limit": *req.SpendingLimit})
}
