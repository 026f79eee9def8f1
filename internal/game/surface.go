package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/spindrift/internal/spindrift"
)

const strokeWidth = 1

// surface draws frames onto an ebiten image.
type surface struct {
	dst *ebiten.Image
}

func (s surface) Clear(bg spindrift.RGB) {
	s.dst.Fill(bg)
}

// StrokePolygon draws the closed outline of pts, one line per edge.
func (s surface) StrokePolygon(pts []spindrift.Point, c spindrift.RGB) {
	for i, a := range pts {
		b := pts[(i+1)%len(pts)]
		vector.StrokeLine(s.dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), strokeWidth, c, true)
	}
}
