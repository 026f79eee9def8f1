package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/iburimskiy/spindrift/internal/config"
	"github.com/iburimskiy/spindrift/internal/control"
	"github.com/iburimskiy/spindrift/internal/cue"
	"github.com/iburimskiy/spindrift/internal/game"
	"github.com/iburimskiy/spindrift/internal/snapshot"
	"github.com/iburimskiy/spindrift/internal/spindrift"
)

func main() {
	settings := config.Defaults()
	settings.RegisterFlags(flag.CommandLine)
	flag.Parse()

	log, err := newLogger(settings.Debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, "spindrift:", err)
		os.Exit(1)
	}
	defer log.Sync() //nolint:errcheck

	if err := run(settings, log); err != nil {
		log.Error("spindrift exited", zap.Error(err))
		os.Exit(1)
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if debug {
		cfg.Level.SetLevel(zapcore.DebugLevel)
	}
	return cfg.Build()
}

func run(settings config.Settings, log *zap.Logger) error {
	settings.Sanitize(log)
	driver := newDriver(settings, log)

	if settings.Snapshot != "" {
		return renderHeadless(driver, settings, log)
	}

	opts := []control.Option{control.WithLogger(log)}
	if settings.Sound {
		player := cue.NewPlayer(log)
		if err := player.Init(); err != nil {
			log.Warn("sound disabled", zap.Error(err))
		} else {
			opts = append(opts, control.WithCues(player))
		}
	}
	ctrl := control.New(driver, opts...)

	ebiten.SetWindowSize(settings.Width, settings.Height)
	ebiten.SetWindowTitle("Spindrift - click to reverse, Space: lock, Esc: pause, R: reset, Q: quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := game.New(driver, ctrl, log)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func newDriver(s config.Settings, log *zap.Logger) *spindrift.Driver {
	d := spindrift.NewDriver(spindrift.Options{
		Sides:            s.Sides,
		Layers:           s.Layers,
		BaseSpeed:        s.BaseSpeed,
		Decay:            s.Decay,
		BaseSize:         s.BaseSize,
		MinSize:          config.MinRenderSize,
		Cadence:          s.Cadence,
		TransitionFrames: config.TransitionFrames,
		Colors:           spindrift.NewDefaultColors().Colors,
		Policy:           control.NewPolicy(s.Policy),
		Width:            s.Width,
		Height:           s.Height,
		Logger:           log,
	})
	if !d.SetShapeColorHex(s.ShapeColor) {
		log.Warn("using default shape colour", zap.String("value", s.ShapeColor))
	}
	if !d.SetBackgroundColorHex(s.BackgroundColor) {
		log.Warn("using default background colour", zap.String("value", s.BackgroundColor))
	}
	return d
}

// renderHeadless runs the animation without a window and writes the last
// frame as SVG.
func renderHeadless(d *spindrift.Driver, s config.Settings, log *zap.Logger) error {
	var frame spindrift.Frame
	for i := 0; i < s.Ticks; i++ {
		frame, _ = d.Tick()
	}
	if err := snapshot.WriteFile(s.Snapshot, frame); err != nil {
		return err
	}
	log.Info("snapshot written", zap.String("path", s.Snapshot), zap.Int("ticks", s.Ticks), zap.Int("layers", len(frame.Polygons)))
	return nil
}
