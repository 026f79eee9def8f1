// Package snapshot writes animation frames as SVG.
package snapshot

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/iburimskiy/spindrift/internal/spindrift"
)

// errWriter remembers the first write error; svgo drops them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

// Write draws f: a background rectangle and one unfilled polygon per layer.
func Write(w io.Writer, f spindrift.Frame) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(f.Width, f.Height)
	canvas.Title("spindrift")
	canvas.Rect(0, 0, f.Width, f.Height, "fill:"+f.Colors.Background.Hex())

	style := fmt.Sprintf("fill:none;stroke:%s;stroke-width:1", f.Colors.Shape.Hex())
	for _, poly := range f.Polygons {
		xs := make([]int, len(poly))
		ys := make([]int, len(poly))
		for i, p := range poly {
			xs[i] = int(math.Round(p.X))
			ys[i] = int(math.Round(p.Y))
		}
		canvas.Polygon(xs, ys, style)
	}
	canvas.End()
	return ew.err
}

// WriteFile writes f to path, replacing any existing file.
func WriteFile(path string, f spindrift.Frame) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close snapshot: %w", cerr)
		}
	}()

	bw := bufio.NewWriter(file)
	if err := Write(bw, f); err != nil {
		return fmt.Errorf("write snapshot %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write snapshot %s: %w", path, err)
	}
	return nil
}
