package dto

import (
	"custody-treasury/internal/core/domain"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("base58addr", validateBase58Addr)
	}
}

// validateBase58Addr checks that the field decodes to a 32-byte public key.
func validateBase58Addr(fl validator.FieldLevel) bool {
	return domain.IsValidAddress(fl.Field().String())
}
