package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/fadhlyaj09/Najwa-Pennywise/internal/errors"
	"github.com/fadhlyaj09/Najwa-Pennywise/internal/services"
)

// DebtHandler handles debt-related requests
type DebtHandler struct {
	debtService services.DebtServicer
}

// NewDebtHandler creates a new DebtHandler
func NewDebtHandler(debtService services.DebtServicer) *DebtHandler {
	return &DebtHandler{debtService: debtService}
}

// CreateDebtRequest represents the request payload for creating a debt
type CreateDebtRequest struct {
	DebtorName  string `json:"debtor_name" binding:"required,max=100"`
	Amount      int64  `json:"amount" binding:"required,gt=0"`
	Description string `json:"description" binding:"max=500"`
	DueDate     string `json:"due_date" binding:"omitempty,ledger_date"`
}

// DebtResponse represents a debt in the response
type DebtResponse struct {
	ID                     string  `json:"id"`
	DebtorName             string  `json:"debtor_name"`
	Amount                 int64   `json:"amount"`
	Description            string  `json:"description"`
	DueDate                string  `json:"due_date"`
	Status                 string  `json:"status"`
	LendingTransactionID   string  `json:"lending_transaction_id"`
	RepaymentTransactionID *string `json:"repayment_transaction_id,omitempty"`
}

// CreateDebt handles the creation of a new debt
// @Summary     Create a debt
// @Description Record money lent to someone. A matching Lending expense transaction is created with the debt.
// @Tags        debts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateDebtRequest true "Debt details"
// @Success     201 {object} DebtResponse "Debt created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /debts [post]
func (h *DebtHandler) CreateDebt(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var dueDate time.Time
	if req.DueDate != "" {
		dueDate, _ = time.Parse("2006-01-02", req.DueDate)
	}

	debt, err := h.debtService.CreateDebt(
		c.Request.Context(),
		userID,
		req.DebtorName,
		req.Amount,
		req.Description,
		dueDate,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"debt": debt})
}

// GetUserDebts handles the retrieval of all debts for a user
// @Summary     List debts
// @Description Get all debts for the authenticated user
// @Tags        debts
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} DebtResponse "List of debts"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /debts [get]
func (h *DebtHandler) GetUserDebts(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	debts, err := h.debtService.ListDebts(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"debts": debts})
}

// SettleDebt handles debt settlement
// @Summary     Settle a debt
// @Description Mark a debt as paid and record the matching Debt Repayment income transaction
// @Tags        debts
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Debt ID"
// @Success     200 {object} DebtResponse "Debt settled"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Debt not found"
// @Failure     409 {object} ErrorResponse "Debt already paid"
// @Router      /debts/{id}/settle [post]
func (h *DebtHandler) SettleDebt(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	debt, err := h.debtService.SettleDebt(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"debt": debt})
}

// DeleteDebt handles the deletion of a debt
// @Summary     Delete a debt
// @Description Delete a debt together with its lending transaction and, when paid, its repayment transaction
// @Tags        debts
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Debt ID"
// @Success     204 "Debt deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Debt not found"
// @Router      /debts/{id} [delete]
func (h *DebtHandler) DeleteDebt(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.debtService.DeleteDebt(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
