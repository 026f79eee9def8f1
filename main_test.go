package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/iburimskiy/spindrift/internal/config"
	"github.com/iburimskiy/spindrift/internal/control"
	"github.com/iburimskiy/spindrift/internal/spindrift"
)

func TestNewDriverFallsBackOnBadColours(t *testing.T) {
	s := config.Defaults()
	s.ShapeColor = "green"
	s.BackgroundColor = "#000010"

	d := newDriver(s, zaptest.NewLogger(t))
	want := spindrift.ColorPair{Shape: spindrift.DefaultShape, Background: spindrift.RGB{B: 0x10}}
	if got := d.Colors(); got != want {
		t.Errorf("colours = %v, want %v", got, want)
	}
}

func TestRunHeadless(t *testing.T) {
	s := config.Defaults()
	s.Snapshot = filepath.Join(t.TempDir(), "out.svg")
	s.Ticks = 10
	s.Sides = 6
	s.Layers = 50
	s.BaseSize = 200

	if err := run(s, zaptest.NewLogger(t)); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	data, err := os.ReadFile(s.Snapshot)
	if err != nil {
		t.Fatalf("snapshot not written: %v", err)
	}
	want := spindrift.RenderableLayers(200, config.MinRenderSize, 50)
	if got := strings.Count(string(data), "<polygon"); got != want {
		t.Errorf("snapshot has %d polygons, want %d", got, want)
	}
}

func TestNewDriverPolicy(t *testing.T) {
	s := config.Defaults()
	s.Policy = config.PolicyPalette
	d := newDriver(s, zaptest.NewLogger(t))
	if got := control.PolicyName(d.Policy()); got != config.PolicyPalette {
		t.Errorf("policy = %q, want %q", got, config.PolicyPalette)
	}
}
