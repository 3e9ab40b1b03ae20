package validator

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type paymentBody struct {
	Amount decimal.Decimal `json:"amount" binding:"gt=0"`
	Method string          `json:"method" binding:"required,oneof=CASH CARD"`
}

func newValidate() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	Register(v)
	return v
}

func TestDecimalRules(t *testing.T) {
	v := newValidate()

	err := v.Struct(paymentBody{Amount: decimal.NewFromInt(-5), Method: "CASH"})
	assert.Equal(t, "amount must be greater than 0", Describe(err))

	err = v.Struct(paymentBody{Amount: decimal.RequireFromString("0.01"), Method: "CASH"})
	assert.NoError(t, err)
}

func TestDescribe(t *testing.T) {
	v := newValidate()

	err := v.Struct(paymentBody{Amount: decimal.NewFromInt(1)})
	assert.Equal(t, "method is required", Describe(err))

	err = v.Struct(paymentBody{Amount: decimal.NewFromInt(1), Method: "GOLD"})
	assert.Equal(t, "method must be one of: CASH CARD", Describe(err))

	assert.Equal(t, "invalid request body", Describe(errors.New("unexpected EOF")))
}
