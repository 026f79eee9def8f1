package spindrift

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Options configures a Driver. Zero numeric fields are not defaulted:
// callers pass validated values.
type Options struct {
	Sides     int
	Layers    int
	BaseSpeed float64
	Decay     float64
	BaseSize  float64
	MinSize   float64

	// Cadence is the number of idle ticks (or completed transitions)
	// between random colour changes.
	Cadence          int
	TransitionFrames int

	Colors ColorPair
	Policy Policy

	Width, Height int

	Logger *zap.Logger
	Now    func() time.Time
}

// Frame is everything needed to draw one tick.
type Frame struct {
	Width, Height int
	Colors        ColorPair
	// Polygons are ordered largest (outermost) first.
	Polygons [][]Point
}

// Surface is a render target for frames.
type Surface interface {
	Clear(background RGB)
	StrokePolygon(pts []Point, c RGB)
}

// Render clears s with the frame background and strokes every polygon as a
// closed, unfilled outline.
func Render(f Frame, s Surface) {
	s.Clear(f.Colors.Background)
	for _, p := range f.Polygons {
		s.StrokePolygon(p, f.Colors.Shape)
	}
}

// Driver owns the layer set and colour engine and advances both once per
// tick. It is not safe for concurrent use; configuration calls must happen
// between ticks.
type Driver struct {
	log *zap.Logger

	layers   *LayerSet
	colors   *ColorEngine
	policy   Policy
	defaults Policy

	sides     int
	baseSpeed float64
	decay     float64
	baseSize  float64
	minSize   float64

	random       bool
	cadence      int
	cadenceCount int

	width, height int
	center        Point

	running bool
	last    Frame
	fps     fpsMeter
}

// NewDriver returns a running driver.
func NewDriver(opts Options) *Driver {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	policy := opts.Policy
	if policy == nil {
		policy = NewRGBCycle()
	}
	d := &Driver{
		log:       log,
		layers:    NewLayerSet(opts.Layers, opts.BaseSpeed, opts.Decay),
		colors:    NewColorEngine(opts.Colors, opts.TransitionFrames),
		policy:    policy,
		defaults:  NewDefaultColors(),
		sides:     opts.Sides,
		baseSpeed: opts.BaseSpeed,
		decay:     opts.Decay,
		baseSize:  opts.BaseSize,
		minSize:   opts.MinSize,
		cadence:   opts.Cadence,
		running:   true,
		fps:       newFPSMeter(now, log),
	}
	d.Resize(opts.Width, opts.Height)
	return d
}

// Tick runs one animation step and returns the frame to draw. While paused
// it does nothing and returns false.
func (d *Driver) Tick() (Frame, bool) {
	if !d.running {
		return d.last, false
	}
	d.fps.tick()
	d.tickColors()
	d.last = d.frame()
	d.layers.Tick()
	return d.last, true
}

func (d *Driver) tickColors() {
	if d.colors.InFlight() {
		if d.colors.Tick() && d.random {
			d.advanceCadence()
		}
		return
	}
	if d.random {
		d.advanceCadence()
	}
}

func (d *Driver) advanceCadence() {
	d.cadenceCount++
	if d.cadenceCount >= d.cadence {
		d.beginFrom(d.policy)
		d.cadenceCount = 0
	}
}

// beginFrom asks p for a target only when a transition can actually start,
// so policies with internal state do not skip entries.
func (d *Driver) beginFrom(p Policy) bool {
	if d.colors.InFlight() {
		return false
	}
	return d.colors.Begin(p.Next(d.colors.Current()))
}

func (d *Driver) frame() Frame {
	n := RenderableLayers(d.baseSize, d.minSize, d.layers.Len())
	polys := make([][]Point, 0, n)
	for i := 0; i < n; i++ {
		polys = append(polys, PolygonVertices(d.center, d.sides, LayerSize(d.baseSize, i), d.layers.Angle(i)))
	}
	return Frame{
		Width:    d.width,
		Height:   d.height,
		Colors:   d.colors.Current(),
		Polygons: polys,
	}
}

// LastFrame returns the most recently produced frame.
func (d *Driver) LastFrame() Frame { return d.last }

// refresh rebuilds the held frame while paused so that size, shape and
// colour changes show without advancing any angle.
func (d *Driver) refresh() {
	if !d.running {
		d.last = d.frame()
	}
}

// Stop pauses the animation. No tick does any work until Resume or Reset.
func (d *Driver) Stop() {
	if !d.running {
		return
	}
	d.running = false
	d.log.Debug("animation paused")
}

// Resume continues from the current state.
func (d *Driver) Resume() {
	if d.running {
		return
	}
	d.running = true
	d.fps.restart()
	d.log.Debug("animation resumed")
}

// TogglePause switches between running and paused.
func (d *Driver) TogglePause() {
	if d.running {
		d.Stop()
	} else {
		d.Resume()
	}
}

// Reset zeroes every layer angle and makes sure the animation is running.
func (d *Driver) Reset() {
	d.layers.ResetAngles()
	d.Resume()
}

// Reverse flips the rotation direction. Ignored while the speed is locked.
func (d *Driver) Reverse() {
	d.layers.Reverse()
}

// ToggleLock locks all layers to layer 0's speed, or restores the cascade.
func (d *Driver) ToggleLock() {
	if d.layers.Locked() {
		d.layers.Unlock()
	} else {
		d.layers.Lock()
	}
	d.log.Debug("speed lock toggled", zap.Bool("locked", d.layers.Locked()))
}

// ToggleRandomColors switches random colour mode. Turning it on heads for
// the policy's first colour, turning it off heads back to the defaults.
// Either transition is dropped if one is already running.
func (d *Driver) ToggleRandomColors() {
	d.random = !d.random
	if d.random {
		d.beginFrom(d.policy)
	} else {
		d.beginFrom(d.defaults)
	}
	d.log.Debug("random colour mode toggled", zap.Bool("on", d.random))
}

// SetPolicy replaces the random colour policy. A running transition keeps
// its target; the new policy is asked from the next cadence on.
func (d *Driver) SetPolicy(p Policy) {
	if p == nil {
		return
	}
	d.policy = p
	d.log.Debug("colour policy changed", zap.String("policy", fmt.Sprintf("%T", p)))
}

// Policy returns the random colour policy.
func (d *Driver) Policy() Policy { return d.policy }

func (d *Driver) SetSides(n int) {
	d.sides = n
	d.refresh()
}

// SetShape applies a preset. Custom keeps the current side count.
func (d *Driver) SetShape(s Shape) {
	if n, ok := s.Sides(); ok {
		d.SetSides(n)
	}
}

// SetLayerCount rebuilds the layer set. Angles restart from zero and any
// speed lock is released.
func (d *Driver) SetLayerCount(n int) {
	d.layers.Configure(n, d.baseSpeed, d.decay)
	d.refresh()
}

// SetBaseSpeed recomputes the speed cascade. While locked the new value is
// only used once the lock is released.
func (d *Driver) SetBaseSpeed(v float64) {
	d.baseSpeed = v
	d.layers.RecomputeSpeeds(d.baseSpeed, d.decay)
}

// SetDecay recomputes the speed cascade with a new decay factor.
func (d *Driver) SetDecay(v float64) {
	d.decay = v
	d.layers.RecomputeSpeeds(d.baseSpeed, d.decay)
}

func (d *Driver) SetBaseSize(v float64) {
	d.baseSize = v
	d.refresh()
}

func (d *Driver) SetColorCadence(n int) { d.cadence = n }

// SetShapeColor applies c immediately, abandoning any running transition.
func (d *Driver) SetShapeColor(c RGB) {
	cur := d.colors.Current()
	cur.Shape = c
	d.colors.Set(cur)
	d.refresh()
}

// SetBackgroundColor applies c immediately, abandoning any running transition.
func (d *Driver) SetBackgroundColor(c RGB) {
	cur := d.colors.Current()
	cur.Background = c
	d.colors.Set(cur)
	d.refresh()
}

// SetShapeColorHex is SetShapeColor for hex input. Malformed input leaves
// the colour unchanged and returns false.
func (d *Driver) SetShapeColorHex(s string) bool {
	c, err := ParseHex(s)
	if err != nil {
		d.log.Debug("ignoring shape colour", zap.Error(err))
		return false
	}
	d.SetShapeColor(c)
	return true
}

// SetBackgroundColorHex is SetBackgroundColor for hex input.
func (d *Driver) SetBackgroundColorHex(s string) bool {
	c, err := ParseHex(s)
	if err != nil {
		d.log.Debug("ignoring background colour", zap.Error(err))
		return false
	}
	d.SetBackgroundColor(c)
	return true
}

// TransitionTo starts a transition to the given hex colours. Malformed
// values keep the current colour.
func (d *Driver) TransitionTo(shape, background string) bool {
	return d.colors.BeginHex(shape, background)
}

// Resize moves the shared centre to the middle of a w×h surface.
func (d *Driver) Resize(w, h int) {
	d.width, d.height = w, h
	d.center = Point{X: float64(w) / 2, Y: float64(h) / 2}
	d.refresh()
}

func (d *Driver) Running() bool { return d.running }

func (d *Driver) Locked() bool { return d.layers.Locked() }

func (d *Driver) RandomColors() bool { return d.random }

func (d *Driver) Sides() int { return d.sides }

func (d *Driver) LayerCount() int { return d.layers.Len() }

func (d *Driver) BaseSpeed() float64 { return d.baseSpeed }

func (d *Driver) Decay() float64 { return d.decay }

func (d *Driver) BaseSize() float64 { return d.baseSize }

func (d *Driver) ColorCadence() int { return d.cadence }

func (d *Driver) Colors() ColorPair { return d.colors.Current() }

func (d *Driver) Transitioning() bool { return d.colors.InFlight() }

// Angles and Speeds expose the layer set for display and tests.
func (d *Driver) Angles() []float64 { return d.layers.Angles() }

func (d *Driver) Speeds() []float64 { return d.layers.Speeds() }

// FPS is the number of ticks counted in the last full second.
func (d *Driver) FPS() int { return d.fps.fps }

func (d *Driver) ShapeDescriptor() string { return ShapeDescriptor(d.sides) }

// Status is the one-line running/paused summary shown to the user.
func (d *Driver) Status() string {
	if !d.running {
		return "Animation Paused - Press ESC to resume"
	}
	lock := "OFF"
	if d.layers.Locked() {
		lock = "ON"
	}
	return fmt.Sprintf("FPS: %d | Speed Lock: %s", d.fps.fps, lock)
}

// fpsMeter counts ticks per wall-clock second.
type fpsMeter struct {
	now    func() time.Time
	log    *zap.Logger
	frames int
	last   time.Time
	fps    int
}

func newFPSMeter(now func() time.Time, log *zap.Logger) fpsMeter {
	return fpsMeter{now: now, log: log, last: now()}
}

func (m *fpsMeter) tick() {
	m.frames++
	t := m.now()
	if t.Sub(m.last) < time.Second {
		return
	}
	m.fps = m.frames
	m.frames = 0
	m.last = t
	m.log.Debug("frame rate", zap.Int("fps", m.fps))
}

func (m *fpsMeter) restart() {
	m.frames = 0
	m.last = m.now()
}
