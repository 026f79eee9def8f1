package spindrift

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// ColorPair is the shape stroke colour together with the background colour.
type ColorPair struct {
	Shape      RGB
	Background RGB
}

// ParseHex parses a 6-digit hex colour with an optional leading '#'.
func ParseHex(s string) (RGB, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 || strings.IndexFunc(h, notHex) >= 0 {
		return RGB{}, fmt.Errorf("parse colour %q: want 6 hex digits", s)
	}
	c, err := colorful.Hex("#" + h)
	if err != nil {
		return RGB{}, fmt.Errorf("parse colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

func notHex(r rune) bool {
	return !('0' <= r && r <= '9' || 'a' <= r && r <= 'f' || 'A' <= r && r <= 'F')
}

// MustParseHex is ParseHex for constants.
func MustParseHex(s string) RGB {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// FromColor converts any image/color value, dropping alpha.
func FromColor(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	return RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// Hex formats c as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGBA implements color.Color as an opaque colour.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// Lerp interpolates each channel as round(a + (b-a)*t), clamped to [0,255].
// t is clamped to [0,1]; t=1 returns b exactly.
func Lerp(a, b RGB, t float64) RGB {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return RGB{
		R: lerpChannel(a.R, b.R, t),
		G: lerpChannel(a.G, b.G, t),
		B: lerpChannel(a.B, b.B, t),
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	v := math.Round(float64(a) + (float64(b)-float64(a))*t)
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// LerpPair interpolates both colours of a pair.
func LerpPair(a, b ColorPair, t float64) ColorPair {
	return ColorPair{
		Shape:      Lerp(a.Shape, b.Shape, t),
		Background: Lerp(a.Background, b.Background, t),
	}
}

// LerpHex is Lerp on hex strings. If either string is malformed, start is
// returned unchanged.
func LerpHex(start, target string, t float64) string {
	a, err := ParseHex(start)
	if err != nil {
		return start
	}
	b, err := ParseHex(target)
	if err != nil {
		return start
	}
	return Lerp(a, b, t).Hex()
}
