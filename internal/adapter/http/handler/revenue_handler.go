package handler

import (
	"custody-treasury/internal/adapter/http/dto"
	"custody-treasury/internal/core/ports"
	"custody-treasury/pkg/apperror"
	"custody-treasury/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RevenueHandler handles revenue distribution endpoints.
type RevenueHandler struct {
	revenueSvc ports.RevenueService
}

// NewRevenueHandler creates a new RevenueHandler.
func NewRevenueHandler(revenueSvc ports.RevenueService) *RevenueHandler {
	return &RevenueHandler{revenueSvc: revenueSvc}
}

// Record handles POST /api/v1/revenue. Distribution failures are reported
// in-band: the event is parked for retry and the response carries the reason.
func (h *RevenueHandler) Record(c *gin.Context) {
	var req dto.RevenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.revenueSvc.RecordAndDistribute(c.Request.Context(), req.EntityID, req.GrossAmount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// Retry handles POST /api/v1/revenue/:id/retry.
func (h *RevenueHandler) Retry(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid event id"))
		return
	}

	result, err := h.revenueSvc.RetryEvent(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result)
}

// RetryPending handles POST /api/v1/revenue/retry.
func (h *RevenueHandler) RetryPending(c *gin.Context) {
	completed, err := h.revenueSvc.RetryPending(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"completed": completed})
}
