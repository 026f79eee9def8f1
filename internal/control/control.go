// Package control translates user commands into calls on the animation
// driver. Every numeric change is checked against the bounds in
// internal/config first; rejected values leave the driver untouched.
//
// Work that can block (dialogs, file writes) runs on its own goroutine and
// hands its result back through Poll, which the host calls between ticks.
package control

import (
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/iburimskiy/spindrift/internal/config"
	"github.com/iburimskiy/spindrift/internal/snapshot"
	"github.com/iburimskiy/spindrift/internal/spindrift"
)

// Command is a user action.
type Command int

const (
	Reverse Command = iota
	Reset
	TogglePause
	ToggleLock
	ToggleRandomColors
	TogglePolicy
	ShapeTriangle
	ShapeSquare
	ShapePentagon
	ShapeHexagon
	CustomSides
	PickShapeColor
	PickBackgroundColor
	SpeedUp
	SpeedDown
	DecayUp
	DecayDown
	LayersUp
	LayersDown
	SizeUp
	SizeDown
	CadenceUp
	CadenceDown
	Snapshot
	ToggleOverlay
)

// Cues plays feedback for direction and lock changes.
type Cues interface {
	Reverse()
	Lock(on bool)
}

type noCues struct{}

func (noCues) Reverse()  {}
func (noCues) Lock(bool) {}

// Controller owns the command path into a Driver.
type Controller struct {
	driver  *spindrift.Driver
	log     *zap.Logger
	dialogs Dialogs
	cues    Cues

	// SnapshotDir is where Snapshot writes SVG files.
	SnapshotDir string
	now         func() time.Time

	pending chan func()
	busy    bool

	overlay bool
	lastErr error
}

// Option customises a Controller.
type Option func(*Controller)

func WithDialogs(d Dialogs) Option { return func(c *Controller) { c.dialogs = d } }

func WithCues(q Cues) Option { return func(c *Controller) { c.cues = q } }

func WithLogger(l *zap.Logger) Option { return func(c *Controller) { c.log = l } }

func WithSnapshotDir(dir string) Option { return func(c *Controller) { c.SnapshotDir = dir } }

func withClock(now func() time.Time) Option { return func(c *Controller) { c.now = now } }

// New returns a controller for d with the overlay shown.
func New(d *spindrift.Driver, opts ...Option) *Controller {
	c := &Controller{
		driver:      d,
		log:         zap.NewNop(),
		dialogs:     ZenityDialogs{},
		cues:        noCues{},
		SnapshotDir: ".",
		now:         time.Now,
		pending:     make(chan func(), 4),
		overlay:     true,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Apply runs cmd against the driver. It never blocks.
func (c *Controller) Apply(cmd Command) {
	d := c.driver
	switch cmd {
	case Reverse:
		if d.Locked() {
			return
		}
		d.Reverse()
		c.cues.Reverse()
	case Reset:
		d.Reset()
	case TogglePause:
		d.TogglePause()
	case ToggleLock:
		d.ToggleLock()
		c.cues.Lock(d.Locked())
	case ToggleRandomColors:
		d.ToggleRandomColors()
	case TogglePolicy:
		c.togglePolicy()
	case ShapeTriangle:
		d.SetShape(spindrift.Triangle)
	case ShapeSquare:
		d.SetShape(spindrift.Square)
	case ShapePentagon:
		d.SetShape(spindrift.Pentagon)
	case ShapeHexagon:
		d.SetShape(spindrift.Hexagon)
	case CustomSides:
		c.askSides()
	case PickShapeColor:
		c.pickColor("Shape colour", d.Colors().Shape, d.SetShapeColor)
	case PickBackgroundColor:
		c.pickColor("Background colour", d.Colors().Background, d.SetBackgroundColor)
	case SpeedUp:
		c.setSpeed(d.BaseSpeed() * config.SpeedStep)
	case SpeedDown:
		c.setSpeed(d.BaseSpeed() / config.SpeedStep)
	case DecayUp:
		c.setDecay(round2(d.Decay() + config.DecayStep))
	case DecayDown:
		c.setDecay(round2(d.Decay() - config.DecayStep))
	case LayersUp:
		c.setLayers(d.LayerCount() + 1)
	case LayersDown:
		c.setLayers(d.LayerCount() - 1)
	case SizeUp:
		c.setSize(d.BaseSize() + config.SizeStep)
	case SizeDown:
		c.setSize(d.BaseSize() - config.SizeStep)
	case CadenceUp:
		c.setCadence(d.ColorCadence() + 1)
	case CadenceDown:
		c.setCadence(d.ColorCadence() - 1)
	case Snapshot:
		c.snapshot()
	case ToggleOverlay:
		c.overlay = !c.overlay
	default:
		c.log.Debug("unknown command", zap.Int("command", int(cmd)))
	}
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func (c *Controller) reject(setting string, v any) {
	c.log.Debug("ignoring out-of-range value", zap.String("setting", setting), zap.Any("value", v))
}

func (c *Controller) setSpeed(v float64) {
	if !config.ValidSpeed(v) {
		c.reject("speed", v)
		return
	}
	c.driver.SetBaseSpeed(v)
}

func (c *Controller) setDecay(v float64) {
	if !config.ValidDecay(v) {
		c.reject("decay", v)
		return
	}
	c.driver.SetDecay(v)
}

func (c *Controller) setLayers(n int) {
	if !config.ValidLayers(n) {
		c.reject("layers", n)
		return
	}
	c.driver.SetLayerCount(n)
}

func (c *Controller) setSize(v float64) {
	if !config.ValidSize(v) {
		c.reject("size", v)
		return
	}
	c.driver.SetBaseSize(v)
}

func (c *Controller) setCadence(n int) {
	if !config.ValidCadence(n) {
		c.reject("cadence", n)
		return
	}
	c.driver.SetColorCadence(n)
}

// togglePolicy swaps the random colour policy between the RGB channel cycle
// and the hue palette. Each switch starts the new policy from the top.
func (c *Controller) togglePolicy() {
	next := config.PolicyPalette
	if PolicyName(c.driver.Policy()) == config.PolicyPalette {
		next = config.PolicyRGB
	}
	c.driver.SetPolicy(NewPolicy(next))
	c.log.Debug("colour policy switched", zap.String("policy", next))
}

// NewPolicy returns the random colour policy called name. Unknown names get
// the RGB channel cycle.
func NewPolicy(name string) spindrift.Policy {
	if name == config.PolicyPalette {
		return spindrift.NewPaletteCycle(spindrift.HuePalette(config.PaletteSize))
	}
	return spindrift.NewRGBCycle()
}

// PolicyName is the config name of p, or "" for policies it does not know.
func PolicyName(p spindrift.Policy) string {
	switch p.(type) {
	case *spindrift.PaletteCycle:
		return config.PolicyPalette
	case *spindrift.RGBCycle:
		return config.PolicyRGB
	}
	return ""
}

// SetSidesText parses a side count typed by the user. Anything that is not
// an integer in range is ignored.
func (c *Controller) SetSidesText(s string) bool {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || !config.ValidSides(n) {
		c.reject("sides", s)
		return false
	}
	c.driver.SetSides(n)
	return true
}

// Poll applies results from finished background work. Call it between ticks.
func (c *Controller) Poll() {
	for {
		select {
		case f := <-c.pending:
			f()
		default:
			return
		}
	}
}

// background runs work off the tick goroutine; the returned closure is
// applied by Poll. Only one job runs at a time.
func (c *Controller) background(name string, work func() func()) {
	if c.busy {
		c.log.Debug("background job already running", zap.String("job", name))
		return
	}
	c.busy = true
	go func() {
		apply := work()
		c.pending <- func() {
			c.busy = false
			if apply != nil {
				apply()
			}
		}
	}()
}

func (c *Controller) fail(err error) func() {
	return func() {
		c.log.Warn("command failed", zap.Error(err))
		c.lastErr = err
	}
}

func (c *Controller) askSides() {
	current := c.driver.Sides()
	c.background("sides", func() func() {
		text, err := c.dialogs.AskSides(current)
		if err != nil {
			if isCanceled(err) {
				return nil
			}
			return c.fail(fmt.Errorf("side count dialog: %w", err))
		}
		return func() { c.SetSidesText(text) }
	})
}

func (c *Controller) pickColor(title string, initial spindrift.RGB, set func(spindrift.RGB)) {
	c.background("colour", func() func() {
		picked, err := c.dialogs.PickColor(title, initial)
		if err != nil {
			if isCanceled(err) {
				return nil
			}
			return c.fail(fmt.Errorf("%s dialog: %w", strings.ToLower(title), err))
		}
		return func() { set(picked) }
	})
}

func (c *Controller) snapshot() {
	frame := c.driver.LastFrame()
	path := filepath.Join(c.SnapshotDir, "spindrift-"+c.now().Format("20060102-150405.000")+".svg")
	c.background("snapshot", func() func() {
		if err := snapshot.WriteFile(path, frame); err != nil {
			return c.fail(err)
		}
		return func() {
			c.log.Info("snapshot written", zap.String("path", path))
			c.lastErr = nil
		}
	})
}

// Busy reports whether a dialog or snapshot is still running.
func (c *Controller) Busy() bool { return c.busy }

func (c *Controller) LastErr() error { return c.lastErr }

func (c *Controller) OverlayVisible() bool { return c.overlay }

// Overlay returns the status lines shown over the animation.
func (c *Controller) Overlay() []string {
	d := c.driver
	random := "OFF"
	if d.RandomColors() {
		random = fmt.Sprintf("ON (every %d, %s)", d.ColorCadence(), PolicyName(d.Policy()))
	}
	colors := d.Colors()
	lines := []string{
		d.Status(),
		"Shape: " + d.ShapeDescriptor(),
		fmt.Sprintf("Layers: %d  Speed: %.2f  Decay: %.2f  Size: %.0f", d.LayerCount(), d.BaseSpeed(), d.Decay(), d.BaseSize()),
		fmt.Sprintf("Shape %s  Background %s  Random colours: %s", colors.Shape.Hex(), colors.Background.Hex(), random),
		"Click: reverse  Space: lock  Esc: pause  R: reset  M: random  P: palette  3-6/C: shape  K/B: colours  S: snapshot  H: hide  Q: quit",
	}
	if c.lastErr != nil {
		lines = append(lines, "Error: "+c.lastErr.Error())
	}
	return lines
}
