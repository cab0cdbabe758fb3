package core

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"gray", ColorGray, false},
		{"Bright_Cyan", ColorBrightCyan, false},
		{" orange ", ColorOrange, false},
		{"", ColorDefault, true},
		{"chartreuse", ColorDefault, true},
	}

	for _, tc := range tests {
		got, err := ParseColor(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseColor(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseColor(%q) = %d, expected %d", tc.in, got, tc.want)
		}
	}
}
