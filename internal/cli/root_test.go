package cli

import (
	"testing"
	"time"
)

func TestParseWeekdays(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []time.Weekday
	}{
		{"short names", "mon,wed,fri", []time.Weekday{time.Monday, time.Wednesday, time.Friday}},
		{"full names", "monday,sunday", []time.Weekday{time.Monday, time.Sunday}},
		{"iso numbers", "1,3,7", []time.Weekday{time.Monday, time.Wednesday, time.Sunday}},
		{"mixed with spaces", " Mon , 7 ", []time.Weekday{time.Monday, time.Sunday}},
		{"duplicates collapsed", "mon,1,monday", []time.Weekday{time.Monday}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWeekdays(tt.input)
			if err != nil {
				t.Fatalf("ParseWeekdays(%q) failed: %v", tt.input, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ParseWeekdays(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ParseWeekdays(%q)[%d] = %v, want %v", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseWeekdaysErrors(t *testing.T) {
	for _, input := range []string{"", "funday", "0", "8", "mon,8", "-1"} {
		if _, err := ParseWeekdays(input); err == nil {
			t.Errorf("ParseWeekdays(%q) should fail", input)
		}
	}
}

func TestFormatQuantity(t *testing.T) {
	tests := []struct {
		quantity int
		want     string
	}{
		{0, "0 (out of stock)"},
		{1, "1 (low)"},
		{3, "3 (low)"},
		{4, "4"},
		{50, "50"},
	}
	for _, tt := range tests {
		if got := FormatQuantity(tt.quantity); got != tt.want {
			t.Errorf("FormatQuantity(%d) = %q, want %q", tt.quantity, got, tt.want)
		}
	}
}
