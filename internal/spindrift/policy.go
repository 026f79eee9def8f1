package spindrift

import "github.com/lucasb-eyer/go-colorful"

// Policy picks the colours the next transition should head for.
type Policy interface {
	Next(current ColorPair) ColorPair
}

// Default colours used by the revert policy.
var (
	DefaultShape      = RGB{R: 0x00, G: 0xff, B: 0x00}
	DefaultBackground = RGB{R: 0x1a, G: 0x1a, B: 0x1a}
)

// DefaultColors always returns the same pair.
type DefaultColors struct {
	Colors ColorPair
}

// NewDefaultColors returns the revert policy for the stock green on dark grey.
func NewDefaultColors() DefaultColors {
	return DefaultColors{Colors: ColorPair{Shape: DefaultShape, Background: DefaultBackground}}
}

func (d DefaultColors) Next(ColorPair) ColorPair { return d.Colors }

// paletteBackgroundOffset is how far ahead of the shape colour the
// background is taken from the palette.
const paletteBackgroundOffset = 10

// PaletteCycle walks a fixed palette in order. The background is the
// entry paletteBackgroundOffset positions after the shape colour.
type PaletteCycle struct {
	palette []RGB
	index   int
}

// NewPaletteCycle cycles through palette starting at its first entry.
func NewPaletteCycle(palette []RGB) *PaletteCycle {
	return &PaletteCycle{palette: append([]RGB(nil), palette...), index: -1}
}

func (p *PaletteCycle) Next(current ColorPair) ColorPair {
	n := len(p.palette)
	if n == 0 {
		return current
	}
	p.index = (p.index + 1) % n
	return ColorPair{
		Shape:      p.palette[p.index],
		Background: p.palette[(p.index+paletteBackgroundOffset)%n],
	}
}

// HuePalette returns n fully saturated colours evenly spaced around the hue
// wheel, starting at red.
func HuePalette(n int) []RGB {
	out := make([]RGB, 0, n)
	for i := 0; i < n; i++ {
		c := colorful.Hsv(float64(i)*360/float64(n), 1, 1)
		r, g, b := c.RGB255()
		out = append(out, RGB{R: r, G: g, B: b})
	}
	return out
}

// RGBCycle steps one channel at a time between 0 and 255, moving to the
// next channel whenever the current one reaches an end. Black is skipped.
// The background is left as it is.
type RGBCycle struct {
	rgb     [3]int
	dir     [3]int
	channel int
}

const (
	rgbStep        = 255
	rgbMaxAttempts = 10
)

// NewRGBCycle starts the cycle from blue.
func NewRGBCycle() *RGBCycle {
	return &RGBCycle{
		rgb: [3]int{0, 0, 255},
		dir: [3]int{1, 1, -1},
	}
}

func (c *RGBCycle) Next(current ColorPair) ColorPair {
	for attempts := 0; ; {
		ch := c.channel
		c.rgb[ch] = clampInt(c.rgb[ch]+c.dir[ch]*rgbStep, 0, 255)
		if c.rgb[ch] == 0 || c.rgb[ch] == 255 {
			c.dir[ch] = -c.dir[ch]
			c.channel = (c.channel + 1) % 3
		}
		attempts++
		if !c.black() || attempts >= rgbMaxAttempts {
			break
		}
	}
	if c.black() {
		c.rgb[0] = 255
	}
	return ColorPair{
		Shape:      RGB{R: uint8(c.rgb[0]), G: uint8(c.rgb[1]), B: uint8(c.rgb[2])},
		Background: current.Background,
	}
}

func (c *RGBCycle) black() bool {
	return c.rgb[0] == 0 && c.rgb[1] == 0 && c.rgb[2] == 0
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
