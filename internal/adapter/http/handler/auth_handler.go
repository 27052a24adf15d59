package handler

import (
	"crypto/subtle"
	"net/http"

	"custody-treasury/internal/adapter/http/dto"
	"custody-treasury/internal/core/ports"
	"custody-treasury/pkg/apperror"
	"custody-treasury/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles operator token minting.
type AuthHandler struct {
	tokenSvc     ports.TokenService
	bootstrapKey string
}

// NewAuthHandler creates a new AuthHandler. An empty bootstrapKey disables
// the token endpoint entirely.
func NewAuthHandler(tokenSvc ports.TokenService, bootstrapKey string) *AuthHandler {
	return &AuthHandler{tokenSvc: tokenSvc, bootstrapKey: bootstrapKey}
}

// Token handles POST /api/v1/auth/token.
func (h *AuthHandler) Token(c *gin.Context) {
	if h.bootstrapKey == "" {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.BootstrapKey), []byte(h.bootstrapKey)) != 1 {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	token, expiry, err := h.tokenSvc.Generate(req.Operator)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.TokenResponse{
		Token:  token,
		Expiry: expiry.Unix(),
	})
}

// HealthCheck handles GET /health, a deep health check verifying all dependencies.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
