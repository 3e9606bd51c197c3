package booking

import (
	"regexp"
	"strings"

	"busticket/internal/domain"
	"busticket/internal/domain/models"
)

var (
	expiryRe = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cvvRe    = regexp.MustCompile(`^\d{3,4}$`)
)

// ValidatePayment checks that either a stored method is referenced or the new
// card details pass local format validation. Nothing here talks to a gateway.
func ValidatePayment(sel models.PaymentSelection) error {
	if strings.TrimSpace(sel.MethodRef) != "" {
		return nil
	}
	if sel.NewCard == nil {
		return domain.ValidationError{Field: "payment", Msg: "choose a payment method or enter card details"}
	}

	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		if r == ' ' || r == '-' {
			return -1
		}
		return 'x'
	}, sel.NewCard.Number)
	if strings.ContainsRune(digits, 'x') || len(digits) < 13 || len(digits) > 19 {
		return domain.ValidationError{Field: "card_number", Msg: "card number must be 13-19 digits"}
	}

	if !expiryRe.MatchString(strings.TrimSpace(sel.NewCard.Expiry)) {
		return domain.ValidationError{Field: "expiry", Msg: "expiry must be MM/YY"}
	}
	if !cvvRe.MatchString(strings.TrimSpace(sel.NewCard.CVV)) {
		return domain.ValidationError{Field: "cvv", Msg: "cvv must be 3-4 digits"}
	}
	return nil
}
