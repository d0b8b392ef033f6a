package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/debt_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/debt_tracker_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// ledgerHandler serves the debt and payment endpoints.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls}
}

// RegisterLedgerRoutes registers the debt and payment routes.
func RegisterLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)

	debts := rg.Group("/debts")
	{
		debts.POST("", h.recordDebt)
		debts.GET("", h.listDebts)
	}

	payments := rg.Group("/payments")
	{
		payments.POST("", h.recordPayment)
		payments.GET("", h.listPayments)
	}
}

// recordDebt godoc
// @Summary Record a debt
// @Description Appends a debt and raises the client's balance in the same transaction
// @Tags debts
// @Accept  json
// @Produce  json
// @Param   debt body dto.CreateDebtRequest true "Debt details"
// @Success 201 {object} dto.DebtResponse
// @Failure 400 {object} apperrors.AppError "MISSING_FIELDS, INVALID_AMOUNT or INVALID_JSON"
// @Failure 404 {object} apperrors.AppError "CLIENT_NOT_FOUND or USER_NOT_FOUND"
// @Failure 500 {object} apperrors.AppError "DB_ERROR"
// @Security BearerAuth
// @Router /debts [post]
func (h *ledgerHandler) recordDebt(c *gin.Context) {
	var req dto.CreateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	debt, err := h.ledgerService.RecordDebt(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusCreated, dto.ToDebtResponse(debt))
}

// listDebts godoc
// @Summary List debts
// @Description Lists debts newest first, optionally for one client
// @Tags debts
// @Produce  json
// @Param   clientId query string false "Client ID"
// @Success 200 {object} dto.ListDebtsResponse
// @Failure 500 {object} apperrors.AppError "DB_ERROR"
// @Security BearerAuth
// @Router /debts [get]
func (h *ledgerHandler) listDebts(c *gin.Context) {
	var params dto.ListDebtsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	debts, err := h.ledgerService.ListDebts(c.Request.Context(), params.ClientID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, dto.ToListDebtsResponse(debts))
}

// recordPayment godoc
// @Summary Record a payment
// @Description Appends a payment and lowers the client's balance, never below zero
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   payment body dto.CreatePaymentRequest true "Payment details"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} apperrors.AppError "MISSING_FIELD, INVALID_AMOUNT or INVALID_JSON"
// @Failure 404 {object} apperrors.AppError "CLIENT_NOT_FOUND or USER_NOT_FOUND"
// @Failure 500 {object} apperrors.AppError "DB_ERROR"
// @Security BearerAuth
// @Router /payments [post]
func (h *ledgerHandler) recordPayment(c *gin.Context) {
	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	payment, err := h.ledgerService.RecordPayment(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

// listPayments godoc
// @Summary List payments
// @Description Lists payments newest first. With a limit, a nextToken is returned while more rows exist.
// @Tags payments
// @Produce  json
// @Param   clientId query string false "Client ID"
// @Param   limit query int false "Page size (1-500)"
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListPaymentsResponse
// @Failure 400 {object} apperrors.AppError "INVALID_NEXT_TOKEN"
// @Failure 500 {object} apperrors.AppError "DB_ERROR"
// @Security BearerAuth
// @Router /payments [get]
func (h *ledgerHandler) listPayments(c *gin.Context) {
	var params dto.ListPaymentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	payments, nextToken, err := h.ledgerService.ListPayments(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, dto.ToListPaymentsResponse(payments, nextToken))
}
