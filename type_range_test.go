package arcana

import "testing"

func TestRange_Contains(t *testing.T) {
	day := MustParseDate("2024-02-10")

	tests := []struct {
		name string
		r    Range
		want bool
	}{
		{"zero range contains everything", Range{}, true},
		{"inside both bounds", NewRange(MustParseDate("2024-01-01"), MustParseDate("2024-12-31")), true},
		{"on the lower bound", NewRange(day, MustParseDate("2024-12-31")), true},
		{"on the upper bound", NewRange(MustParseDate("2024-01-01"), day), true},
		{"before the lower bound", Since(MustParseDate("2024-02-11")), false},
		{"after the upper bound", Until(MustParseDate("2024-02-09")), false},
		{"open lower bound", Until(MustParseDate("2024-03-01")), true},
		{"open upper bound", Since(MustParseDate("2024-01-01")), true},
		{"single day match", On(day), true},
		{"single day miss", On(MustParseDate("2024-02-11")), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Contains(day); got != tt.want {
				t.Errorf("%+v.Contains(%v) = %v, want %v", tt.r, day, got, tt.want)
			}
		})
	}
}

func TestNewRange_SwapsBounds(t *testing.T) {
	from := MustParseDate("2024-03-01")
	to := MustParseDate("2024-01-01")

	r := NewRange(from, to)
	if r.From != to || r.To != from {
		t.Errorf("NewRange(%v, %v) = %+v, want bounds swapped", from, to, r)
	}
}
