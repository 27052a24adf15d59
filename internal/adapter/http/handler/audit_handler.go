package handler

import (
	"strconv"
	"time"

	"custody-treasury/internal/adapter/http/dto"
	"custody-treasury/internal/core/domain"
	"custody-treasury/internal/core/ports"
	"custody-treasury/pkg/apperror"
	"custody-treasury/pkg/response"

	"github.com/gin-gonic/gin"
)

const defaultAuditLimit = 100

// AuditHandler serves read-only audit trail queries.
type AuditHandler struct {
	auditSvc ports.AuditService
}

// NewAuditHandler creates a new AuditHandler.
func NewAuditHandler(auditSvc ports.AuditService) *AuditHandler {
	return &AuditHandler{auditSvc: auditSvc}
}

// List handles GET /api/v1/audit. Exactly one filter applies per request:
// caller, operation, or a from/to time range, checked in that order.
func (h *AuditHandler) List(c *gin.Context) {
	limit := defaultAuditLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 1000 {
			response.Error(c, apperror.Validation("limit must be between 1 and 1000"))
			return
		}
		limit = parsed
	}

	var (
		records []domain.AuditRecord
		err     error
	)

	switch {
	case c.Query("caller") != "":
		records, err = h.auditSvc.ListByCaller(c.Request.Context(), c.Query("caller"), limit)
	case c.Query("operation") != "":
		records, err = h.auditSvc.ListByOperation(c.Request.Context(), domain.OperationKind(c.Query("operation")), limit)
	case c.Query("from") != "" && c.Query("to") != "":
		var from, to time.Time
		from, err = time.Parse(time.RFC3339, c.Query("from"))
		if err != nil {
			response.Error(c, apperror.Validation("from must be RFC3339"))
			return
		}
		to, err = time.Parse(time.RFC3339, c.Query("to"))
		if err != nil {
			response.Error(c, apperror.Validation("to must be RFC3339"))
			return
		}
		records, err = h.auditSvc.ListByTimeRange(c.Request.Context(), from, to)
	default:
		response.Error(c, apperror.Validation("one of caller, operation, or from/to is required"))
		return
	}

	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.AuditRecordResponse, 0, len(records))
	for i := range records {
		items = append(items, toAuditRecordResponse(&records[i]))
	}

	response.OK(c, dto.AuditListResponse{Items: items, Count: len(items)})
}

// toAuditRecordResponse converts domain.AuditRecord to DTO.
func toAuditRecordResponse(rec *domain.AuditRecord) dto.AuditRecordResponse {
	return dto.AuditRecordResponse{
		ID:          rec.ID.String(),
		Operation:   string(rec.Operation),
		Amount:      rec.Amount,
		Destination: rec.Destination,
		TxSignature: rec.TxSignature,
		Caller:      rec.Caller,
		Success:     rec.Success,
		Error:       rec.Error,
		CreatedAt:   rec.CreatedAt.Format(time.RFC3339),
	}
}
