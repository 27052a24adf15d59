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

// PoolHandler handles wallet pool management endpoints.
type PoolHandler struct {
	poolSvc ports.PoolService
}

// NewPoolHandler creates a new PoolHandler.
func NewPoolHandler(poolSvc ports.PoolService) *PoolHandler {
	return &PoolHandler{poolSvc: poolSvc}
}

// Fund handles POST /api/v1/pool/fund.
func (h *PoolHandler) Fund(c *gin.Context) {
	operator := middleware.Operator(c)
	if operator == "" {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.PoolFundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	report, err := h.poolSvc.Fund(c.Request.Context(), req.Count, operator)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, report)
}

// Sweep handles POST /api/v1/pool/sweep.
func (h *PoolHandler) Sweep(c *gin.Context) {
	var req dto.PoolSweepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	statuses := make([]domain.PoolWalletStatus, 0, len(req.Statuses))
	for _, s := range req.Statuses {
		status := domain.PoolWalletStatus(s)
		switch status {
		case domain.PoolWalletStatusReady, domain.PoolWalletStatusReserved,
			domain.PoolWalletStatusUsed, domain.PoolWalletStatusFailed:
			statuses = append(statuses, status)
		default:
			response.Error(c, apperror.Validation("unknown pool wallet status: "+s))
			return
		}
	}

	report, err := h.poolSvc.Sweep(c.Request.Context(), ports.SweepOptions{
		Statuses: statuses,
		DryRun:   req.DryRun,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, report)
}
