package models

// PaymentSelection is either a stored method reference or fresh card details
// captured for this booking. Card details are validated locally only; no
// gateway call happens in this workflow.
type PaymentSelection struct {
	MethodRef string       `json:"method_ref,omitempty"`
	NewCard   *CardDetails `json:"new_card,omitempty"`
}

type CardDetails struct {
	Number string `json:"number"`
	Expiry string `json:"expiry"` // MM/YY
	CVV    string `json:"cvv"`
}
