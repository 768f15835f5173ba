package rectstream

import (
	"image/color"
	"testing"
)

// TestHex tests hex color parsing.
func TestHex(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want RGBA
	}{
		{"red 6-digit", "FF0000", Red},
		{"red with hash", "#FF0000", Red},
		{"green 6-digit", "00FF00", Green},
		{"blue 3-digit", "00F", Blue},
		{"black 3-digit", "000", Black},
		{"white 3-digit", "FFF", White},
		{"semi-transparent", "FF000080", RGBA{R: 1, G: 0, B: 0, A: 128.0 / 255.0}},
		{"4-digit rgba", "F00F", Red},
		{"invalid length", "FF00F", Black},
		{"invalid digits", "GGGGGG", Black},
		{"empty", "", Black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Hex(tt.hex); got != tt.want {
				t.Errorf("Hex(%q) = %v, want %v", tt.hex, got, tt.want)
			}
		})
	}
}

// TestHSL tests HSL conversion at primary hues.
func TestHSL(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float64
		want    RGBA
	}{
		{"red", 0, 1, 0.5, Red},
		{"green", 120, 1, 0.5, Green},
		{"blue", 240, 1, 0.5, Blue},
		{"white", 0, 0, 1, White},
		{"black", 0, 0, 0, Black},
		{"wraps past 360", 360, 1, 0.5, Red},
		{"negative hue", -120, 1, 0.5, Blue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HSL(tt.h, tt.s, tt.l)
			if !colorNear(got, tt.want, 1e-9) {
				t.Errorf("HSL(%v, %v, %v) = %v, want %v", tt.h, tt.s, tt.l, got, tt.want)
			}
		})
	}
}

// TestLerp tests color interpolation endpoints and midpoint.
func TestLerp(t *testing.T) {
	if got := Black.Lerp(White, 0); got != Black {
		t.Errorf("Lerp t=0 = %v, want black", got)
	}
	if got := Black.Lerp(White, 1); got != White {
		t.Errorf("Lerp t=1 = %v, want white", got)
	}
	mid := Black.Lerp(White, 0.5)
	if !colorNear(mid, RGBA{R: 0.5, G: 0.5, B: 0.5, A: 1}, 1e-9) {
		t.Errorf("Lerp t=0.5 = %v, want mid gray", mid)
	}
}

// TestFromColor tests conversion from the standard color interface.
func TestFromColor(t *testing.T) {
	tests := []struct {
		name string
		c    color.Color
		want RGBA
	}{
		{"opaque red", color.NRGBA{R: 255, A: 255}, Red},
		{"transparent", color.NRGBA{}, Transparent},
		{"half alpha green", color.NRGBA{G: 255, A: 128}, RGBA{G: 1, A: 128.0 / 255.0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromColor(tt.c)
			if !colorNear(got, tt.want, 1.0/255) {
				t.Errorf("FromColor(%v) = %v, want %v", tt.c, got, tt.want)
			}
		})
	}
}

// TestWithAlpha tests the alpha-replacement helpers.
func TestWithAlpha(t *testing.T) {
	c := Red.WithAlpha(0.25)
	if c.R != 1 || c.A != 0.25 {
		t.Errorf("Red.WithAlpha(0.25) = %v", c)
	}
	b := Solid(Red).WithAlpha(0.25)
	if b.Color != c {
		t.Errorf("SolidBrush.WithAlpha = %v, want %v", b.Color, c)
	}
}
