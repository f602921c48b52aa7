package dto

import (
	"gd-arcade/internal/core/domain"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("wallet_address", validateWalletAddress)
	}
}

// validateWalletAddress accepts checksummed or lowercase EVM addresses.
func validateWalletAddress(fl validator.FieldLevel) bool {
	return domain.ValidWalletAddress(fl.Field().String())
}
