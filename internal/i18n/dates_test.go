package i18n

import "testing"

func TestFormatDateShort(t *testing.T) {
	t.Parallel()

	tests := []struct {
		iso  string
		want string
	}{
		{iso: "2024-01-01", want: "LUN 01 GEN"},
		{iso: "2024-01-05", want: "VEN 05 GEN"},
		{iso: "2024-12-25", want: "MER 25 DIC"},
		{iso: "2024-08-18", want: "DOM 18 AGO"},
	}

	for _, test := range tests {
		if got := FormatDateShort(test.iso); got != test.want {
			t.Fatalf("FormatDateShort(%q) = %q, want %q", test.iso, got, test.want)
		}
	}
}

func TestFormatDateShortUnparseableInputPassesThrough(t *testing.T) {
	t.Parallel()

	if got := FormatDateShort("domani"); got != "domani" {
		t.Fatalf("expected pass-through, got %q", got)
	}
}

func TestWeekdayLabel(t *testing.T) {
	t.Parallel()

	if got := WeekdayLabel(5); got != "VEN" {
		t.Fatalf("WeekdayLabel(5) = %q", got)
	}
	if got := WeekdayLabel(9); got != "-" {
		t.Fatalf("WeekdayLabel(9) = %q", got)
	}
}
