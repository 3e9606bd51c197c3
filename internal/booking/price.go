package booking

// Total derives the booking price: unit price per seat times passenger count
// plus the policy's fixed fee. The draft recomputes this synchronously on
// every seat, passenger, or offer change, so the stored total is never stale.
func Total(unitPrice int64, passengerCount int, fixedFee int64) int64 {
	if passengerCount < 0 {
		passengerCount = 0
	}
	return unitPrice*int64(passengerCount) + fixedFee
}
