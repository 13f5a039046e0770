package core

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
		ok   bool
	}{
		{"red", ColorRed, true},
		{"Bright_Yellow", ColorBrightYellow, true},
		{" dark red ", ColorDarkRed, true},
		{"grey", ColorGray, true},
		{"chartreuse", ColorDefault, false},
	}

	for _, tc := range tests {
		got, ok := ParseColor(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseColor(%q) = (%v, %v), expected (%v, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}

	for c := ColorDefault; c < colorCount; c++ {
		if got, ok := ParseColor(c.String()); !ok || got != c {
			t.Errorf("ParseColor(%q) did not round-trip", c.String())
		}
	}
}
