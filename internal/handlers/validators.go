package handlers

import (
	"strings"
	"sync"

	"github.com/SscSPs/crypto_wallet_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

// registerValidators adds the custom binding tags used by the request DTOs.
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("currency", validateCurrency)
		_ = v.RegisterValidation("pricekey", validatePriceKey)
	})
}

// validateCurrency accepts any code of the supported catalog, case-insensitively.
func validateCurrency(fl validator.FieldLevel) bool {
	_, ok := domain.LookupCurrency(domain.NormalizeCurrencyCode(fl.Field().String()))
	return ok
}

// validatePriceKey accepts "<CODE>" or "<BASE>_<QUOTE>".
func validatePriceKey(fl validator.FieldLevel) bool {
	parts := strings.Split(strings.TrimSpace(fl.Field().String()), "_")
	if len(parts) > 2 {
		return false
	}
	for _, p := range parts {
		if _, ok := domain.LookupCurrency(domain.NormalizeCurrencyCode(p)); !ok {
			return false
		}
	}
	return true
}
