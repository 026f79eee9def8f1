package spindrift

import (
	"fmt"
	"math"
)

// Point is a position on the drawing surface.
type Point struct {
	X, Y float64
}

// SizeDecay is the ratio between the sizes of neighbouring layers.
const SizeDecay = 0.9

// PolygonVertices returns the corners of a regular polygon of the given
// size (circumscribed diameter) centred on center. Vertex 0 points straight
// up before rotation; rotation is in degrees, clockwise on a y-down surface.
func PolygonVertices(center Point, sides int, size, rotation float64) []Point {
	if sides < 3 {
		return nil
	}
	pts := make([]Point, sides)
	step := 2 * math.Pi / float64(sides)
	start := -math.Pi/2 + rotation*math.Pi/180
	r := size / 2
	for i := range pts {
		a := start + float64(i)*step
		pts[i] = Point{X: center.X + math.Cos(a)*r, Y: center.Y + math.Sin(a)*r}
	}
	return pts
}

// LayerSize is the size of layer i: baseSize * 0.9^i.
func LayerSize(baseSize float64, i int) float64 {
	return baseSize * math.Pow(SizeDecay, float64(i))
}

// RenderableLayers counts how many of the first n layers are at least
// minSize. Layers are drawn largest first and drawing stops at the first one
// below minSize.
func RenderableLayers(baseSize, minSize float64, n int) int {
	for i := 0; i < n; i++ {
		if LayerSize(baseSize, i) < minSize {
			return i
		}
	}
	return n
}

// Shape is a named polygon preset.
type Shape string

const (
	Triangle Shape = "triangle"
	Square   Shape = "square"
	Pentagon Shape = "pentagon"
	Hexagon  Shape = "hexagon"
	Custom   Shape = "custom"
)

// Sides returns the side count of a preset. Custom and unknown shapes
// return 0 and ok=false: they keep whatever side count is current.
func (s Shape) Sides() (int, bool) {
	switch s {
	case Triangle:
		return 3, true
	case Square:
		return 4, true
	case Pentagon:
		return 5, true
	case Hexagon:
		return 6, true
	}
	return 0, false
}

// ShapeName is the display name for a side count.
func ShapeName(sides int) string {
	switch sides {
	case 3:
		return "Triangle"
	case 4:
		return "Square"
	case 5:
		return "Pentagon"
	case 6:
		return "Hexagon"
	}
	return fmt.Sprintf("%d-gon", sides)
}

// ShapeDescriptor is e.g. "Square (4 sides)".
func ShapeDescriptor(sides int) string {
	return fmt.Sprintf("%s (%d sides)", ShapeName(sides), sides)
}
