package dto

import (
	"github.com/go-playground/validator/v10"
	"github.com/hugohenrick/gestor-pme/internal/domain/sale"
	"github.com/hugohenrick/gestor-pme/internal/domain/user"
)

// RegisterValidators registra as tags "role" e "paymentmethod" no validador
func RegisterValidators(v *validator.Validate) error {
	if err := v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		_, err := user.ParseRole(fl.Field().String())
		return err == nil
	}); err != nil {
		return err
	}
	return v.RegisterValidation("paymentmethod", func(fl validator.FieldLevel) bool {
		return sale.PaymentMethod(fl.Field().String()).Valid()
	})
}
