package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Policy groups the booking business constants that the product screens used to
// hard-code with different values (seat cap 4 vs 5, fixed fee 2 vs 10, cancel
// window 24h vs none). Keeping them in one place makes the disagreement visible
// and overridable instead of baked into each flow.
type Policy struct {
	// SeatCap is the maximum number of seats in a single booking.
	SeatCap int
	// FixedFee is added once per booking on top of unitPrice * seats.
	FixedFee int64
	// CancelWindow is the minimum time before departure for a cancellation.
	// Zero means cancellation is allowed up to departure.
	CancelWindow time.Duration
	// MinNameLen is the shortest accepted passenger name.
	MinNameLen int
	// RequireAge controls whether passenger age must be supplied.
	RequireAge bool
}

func DefaultPolicy() Policy {
	return Policy{
		SeatCap:      5,
		FixedFee:     10,
		CancelWindow: 24 * time.Hour,
		MinNameLen:   3,
		RequireAge:   false,
	}
}

// LoadPolicy reads overrides from the environment, falling back to defaults.
func LoadPolicy() Policy {
	p := DefaultPolicy()
	p.SeatCap = envInt("BOOKING_SEAT_CAP", p.SeatCap)
	p.FixedFee = int64(envInt("BOOKING_FIXED_FEE", int(p.FixedFee)))
	p.MinNameLen = envInt("BOOKING_MIN_NAME_LEN", p.MinNameLen)
	p.RequireAge = envBool("BOOKING_REQUIRE_AGE", p.RequireAge)

	// An explicit zero selects the unconditional-cancellation variant, so the
	// window cannot go through envInt's positive-only parse.
	if raw := strings.TrimSpace(os.Getenv("BOOKING_CANCEL_WINDOW_HOURS")); raw != "" {
		if h, err := strconv.Atoi(raw); err == nil && h >= 0 {
			p.CancelWindow = time.Duration(h) * time.Hour
		}
	}
	return p
}
