package spindrift

import (
	"image/color"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    RGB
		wantErr bool
	}{
		{in: "#00ff00", want: RGB{G: 255}},
		{in: "00FF00", want: RGB{G: 255}},
		{in: "#1a1A1a", want: RGB{R: 26, G: 26, B: 26}},
		{in: " #ff8000 ", want: RGB{R: 255, G: 128}},
		{in: "#fff", wantErr: true},
		{in: "#gg0000", wantErr: true},
		{in: "#+1+2+3", wantErr: true},
		{in: "##00ff00", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseHex(%q) = %v, want error", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseHex(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRGBHex(t *testing.T) {
	for _, s := range []string{"#000000", "#00ff00", "#1a1a1a", "#800080", "#ffffff"} {
		if got := MustParseHex(s).Hex(); got != s {
			t.Errorf("Hex round trip of %s = %s", s, got)
		}
	}
}

func TestFromColor(t *testing.T) {
	got := FromColor(color.NRGBA{R: 12, G: 34, B: 56, A: 255})
	if want := (RGB{R: 12, G: 34, B: 56}); got != want {
		t.Errorf("FromColor = %v, want %v", got, want)
	}
}

func TestLerp(t *testing.T) {
	a := RGB{R: 0, G: 255, B: 10}
	b := RGB{R: 255, G: 0, B: 11}
	tests := []struct {
		t    float64
		want RGB
	}{
		{-1, a},
		{0, a},
		{0.5, RGB{R: 128, G: 128, B: 11}},
		{0.25, RGB{R: 64, G: 191, B: 10}},
		{1, b},
		{2, b},
	}
	for _, tt := range tests {
		if got := Lerp(a, b, tt.t); got != tt.want {
			t.Errorf("Lerp(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestLerpHex(t *testing.T) {
	tests := []struct {
		name          string
		start, target string
		t             float64
		want          string
	}{
		{"midpoint", "#000000", "#ffffff", 0.5, "#808080"},
		{"end", "#00ff00", "1a1a1a", 1, "#1a1a1a"},
		{"bad start", "#00ff0", "#ffffff", 0.5, "#00ff0"},
		{"bad target", "#00ff00", "white", 0.5, "#00ff00"},
		{"both bad", "red", "blue", 1, "red"},
	}
	for _, tt := range tests {
		if got := LerpHex(tt.start, tt.target, tt.t); got != tt.want {
			t.Errorf("%s: LerpHex(%q, %q, %v) = %q, want %q", tt.name, tt.start, tt.target, tt.t, got, tt.want)
		}
	}
}
