package graphics

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#ff0000", ColorRed},
		{"80000000", Color(0x80000000)},
		{" #00ff00 ", ColorGreen},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Fatalf("ParseColor(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if _, err := ParseColor("#12"); err == nil {
		t.Error("expected error for short color")
	}
}

func TestColorAlpha(t *testing.T) {
	c := ColorBlue.WithAlpha(0.5)
	if c.Hex() != "#0000ff" {
		t.Errorf("Hex = %s", c.Hex())
	}
	if got := c.ScaleAlpha(0).Alpha(); got != 0 {
		t.Errorf("ScaleAlpha(0).Alpha() = %v", got)
	}
	if !ColorTransparent.IsTransparent() {
		t.Error("transparent should report transparent")
	}
}
