package config

import (
	"testing"
	"time"
)

func TestLoadPolicyDefaults(t *testing.T) {
	p := LoadPolicy()
	if p != DefaultPolicy() {
		t.Fatalf("expected defaults, got %+v", p)
	}
}

func TestLoadPolicyOverrides(t *testing.T) {
	t.Setenv("BOOKING_SEAT_CAP", "4")
	t.Setenv("BOOKING_FIXED_FEE", "2")
	t.Setenv("BOOKING_CANCEL_WINDOW_HOURS", "48")
	t.Setenv("BOOKING_MIN_NAME_LEN", "2")
	t.Setenv("BOOKING_REQUIRE_AGE", "true")

	p := LoadPolicy()
	if p.SeatCap != 4 || p.FixedFee != 2 {
		t.Fatalf("seat cap / fee overrides not applied: %+v", p)
	}
	if p.CancelWindow != 48*time.Hour {
		t.Fatalf("cancel window = %v", p.CancelWindow)
	}
	if p.MinNameLen != 2 || !p.RequireAge {
		t.Fatalf("name/age overrides not applied: %+v", p)
	}
}

func TestLoadPolicyZeroCancelWindow(t *testing.T) {
	t.Setenv("BOOKING_CANCEL_WINDOW_HOURS", "0")
	if p := LoadPolicy(); p.CancelWindow != 0 {
		t.Fatalf("explicit zero window not honored, got %v", p.CancelWindow)
	}
}

func TestLoadPolicyIgnoresBadValues(t *testing.T) {
	t.Setenv("BOOKING_SEAT_CAP", "none")
	t.Setenv("BOOKING_CANCEL_WINDOW_HOURS", "-3")
	t.Setenv("BOOKING_REQUIRE_AGE", "maybe")

	p := LoadPolicy()
	if p != DefaultPolicy() {
		t.Fatalf("bad values must fall back to defaults, got %+v", p)
	}
}
