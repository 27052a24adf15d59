package handler

import (
	"custody-treasury/internal/adapter/http/dto"
	"custody-treasury/internal/adapter/http/middleware"
	"custody-treasury/internal/core/domain"
	"custody-treasury/internal/core/ports"
	"custody-treasury/pkg/apperror"
	"custody-treasury/pkg/response"

	"github.com/gin-gonic/gin"
)

// TreasuryHandler handles custody transfer and balance endpoints.
type TreasuryHandler struct {
	treasurySvc ports.TreasuryService
}

// NewTreasuryHandler creates a new TreasuryHandler.
func NewTreasuryHandler(treasurySvc ports.TreasuryService) *TreasuryHandler {
	return &TreasuryHandler{treasurySvc: treasurySvc}
}

// Send handles POST /api/v1/treasury/send. Guardrail denials come back as
// 422 with the denial reason; only infrastructure failures are 5xx.
func (h *TreasuryHandler) Send(c *gin.Context) {
	operator := middleware.Operator(c)
	if operator == "" {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.treasurySvc.Send(c.Request.Context(), domain.OperationSend, req.Destination, req.Amount, operator)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !result.Success {
		response.Error(c, apperror.ErrGuardrailDenied(result.Reason))
		return
	}

	response.OK(c, result)
}

// GetBalance handles GET /api/v1/treasury/balance.
func (h *TreasuryHandler) GetBalance(c *gin.Context) {
	operator := middleware.Operator(c)
	if operator == "" {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	balance, err := h.treasurySvc.GetBalance(c.Request.Context(), operator)
	if err != nil {
		response.Error(c, err)
		return
	}

	address, err := h.treasurySvc.CustodyAddress()
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.BalanceResponse{
		Address: address,
		Balance: balance,
	})
}

// GetAddress handles GET /api/v1/treasury/address.
func (h *TreasuryHandler) GetAddress(c *gin.Context) {
	address, err := h.treasurySvc.CustodyAddress()
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"address": address})
}
