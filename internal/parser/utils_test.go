package parser

import "testing"

func TestParseTimeOfDay_Formats(t *testing.T) {
	t.Parallel()

	tod, ok := ParseTimeOfDay("23:30:15")
	if !ok {
		t.Fatalf("expected ok")
	}
	if tod.Hour != 23 || tod.Minute != 30 || tod.Second != 15 {
		t.Fatalf("unexpected time: %v", tod)
	}

	tod, ok = ParseTimeOfDay(" 07:45 ")
	if !ok {
		t.Fatalf("expected ok for HH:MM")
	}
	if tod.Hour != 7 || tod.Minute != 45 || tod.Second != 0 {
		t.Fatalf("unexpected time: %v", tod)
	}
}

func TestParseTimeOfDay_Invalid(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "  ", "25:00", "7点30分", "0730", "12:60"} {
		if _, ok := ParseTimeOfDay(input); ok {
			t.Fatalf("expected not ok for %q", input)
		}
	}
}

func TestParseDistanceKM(t *testing.T) {
	t.Parallel()

	if got := ParseDistanceKM("1,178"); got != 1178 {
		t.Fatalf("want 1178 got %v", got)
	}
	if got := ParseDistanceKM(" 980.5 "); got != 980.5 {
		t.Fatalf("want 980.5 got %v", got)
	}
	if got := ParseDistanceKM(""); got != 0 {
		t.Fatalf("empty want 0 got %v", got)
	}
	if got := ParseDistanceKM("约1200"); got != 0 {
		t.Fatalf("non-numeric want 0 got %v", got)
	}
}

func TestNormalizeHeader_BOM(t *testing.T) {
	t.Parallel()

	if got := NormalizeHeader("\ufeff" + ColFlightNumber); got != ColFlightNumber {
		t.Fatalf("unexpected header: %q", got)
	}
	if got := NormalizeHeader("  机型 "); got != ColModel {
		t.Fatalf("unexpected header: %q", got)
	}
}
