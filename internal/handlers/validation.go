package handlers

import (
	"reflect"
	"sync"

	"github.com/SscSPs/general_ledger/internal/utils/accounting"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var configureBindingOnce sync.Once

// configureBinding makes JSON decoding strict and teaches gin's validator
// about decimal amounts. Decimals are presented to rules as their string form
// so `money` can check the scale.
func configureBinding() {
	configureBindingOnce.Do(func() {
		binding.EnableDecoderDisallowUnknownFields = true
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
		_ = v.RegisterValidation("money", validateMoney)
	})
}

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

// validateMoney accepts amounts with at most two fractional digits that fit the
// stored precision. Sign is left to the services, which report it with a
// ledger-specific error.
func validateMoney(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return accounting.HasMoneyScale(d) && accounting.WithinMoneyRange(d)
}
