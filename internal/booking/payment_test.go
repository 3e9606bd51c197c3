package booking

import (
	"testing"

	"busticket/internal/domain/models"

	"github.com/stretchr/testify/assert"
)

func TestValidatePaymentStoredReference(t *testing.T) {
	assert.NoError(t, ValidatePayment(models.PaymentSelection{MethodRef: "pm_abc"}))
}

func TestValidatePaymentCardFormats(t *testing.T) {
	ok := models.CardDetails{Number: "4242 4242 4242 4242", Expiry: "09/27", CVV: "123"}
	assert.NoError(t, ValidatePayment(models.PaymentSelection{NewCard: &ok}))

	cases := []models.CardDetails{
		{Number: "4242", Expiry: "09/27", CVV: "123"},                // too short
		{Number: "4242424242424242", Expiry: "13/27", CVV: "123"},    // bad month
		{Number: "4242424242424242", Expiry: "9/27", CVV: "123"},     // missing zero
		{Number: "4242424242424242", Expiry: "09/27", CVV: "12"},     // short cvv
		{Number: "4242-4242-4242-424a", Expiry: "09/27", CVV: "123"}, // letters
	}
	for i, c := range cases {
		card := c
		err := ValidatePayment(models.PaymentSelection{NewCard: &card})
		assert.Error(t, err, "case %d should fail", i)
	}

	assert.Error(t, ValidatePayment(models.PaymentSelection{}))
}
