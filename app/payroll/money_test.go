package payroll

import "testing"

func TestToCentsRoundsHalfAwayFromZero(t *testing.T) {
	cases := []struct {
		in   float64
		want int64
	}{
		{0, 0},
		{1, 100},
		{1.004, 100},
		{1.006, 101},
		{0.125, 13}, // exact half in binary, rounds away from zero
		{-0.125, -13},
		{100.10, 10010},
		{0.1 + 0.2, 30}, // 0.30000000000000004
	}
	for _, tc := range cases {
		if got := ToCents(tc.in); got != tc.want {
			t.Errorf("ToCents(%v): got %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestFromCentsRoundTrip(t *testing.T) {
	for _, cents := range []int64{0, 1, 99, 100, 10010, 123456789} {
		if got := ToCents(FromCents(cents)); got != cents {
			t.Errorf("round trip %d: got %d", cents, got)
		}
	}
}

func TestFormatCents(t *testing.T) {
	if got := FormatCents(35000); got != "350.00" {
		t.Errorf("FormatCents(35000): got %q, want %q", got, "350.00")
	}
	if got := FormatCents(101); got != "1.01" {
		t.Errorf("FormatCents(101): got %q, want %q", got, "1.01")
	}
}

func TestClampNonNegative(t *testing.T) {
	if got := clampNonNegative(-5); got != 0 {
		t.Errorf("clampNonNegative(-5): got %d, want 0", got)
	}
	if got := clampNonNegative(7); got != 7 {
		t.Errorf("clampNonNegative(7): got %d, want 7", got)
	}
}
