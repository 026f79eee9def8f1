package config

import (
	"flag"

	"go.uber.org/zap"
)

const (
	WindowWidth  = 1024
	WindowHeight = 768

	// Shape
	DefaultSides = 4
	MinSides     = 3
	MaxSides     = 20

	// Layers
	DefaultLayers = 20
	MinLayers     = 5
	MaxLayers     = 50

	// Rotation parameters (degrees per tick)
	DefaultBaseSpeed = 5.3
	DefaultDecay     = 0.97
	MinSpeed         = 0.1
	MaxSpeed         = 20000
	MinDecay         = 0.1
	MaxDecay         = 20000

	// Size parameters
	DefaultBaseSize = 1000
	MinBaseSize     = 200
	MaxBaseSize     = 2000
	MinRenderSize   = 5

	// Colour parameters
	DefaultShapeColor      = "#00ff00"
	DefaultBackgroundColor = "#1a1a1a"
	DefaultColorCadence    = 5
	MinColorCadence        = 1
	TransitionFrames       = 60

	// Host key-repeat step sizes
	SpeedStep   = 1.1
	DecayStep   = 0.01
	SizeStep    = 50
	PaletteSize = 24
)

// Color policies accepted by -policy.
const (
	PolicyRGB     = "rgb"
	PolicyPalette = "palette"
)

// Settings holds the startup values chosen on the command line.
type Settings struct {
	Width, Height int

	Sides     int
	Layers    int
	BaseSpeed float64
	Decay     float64
	BaseSize  float64
	Cadence   int

	ShapeColor      string
	BackgroundColor string
	Policy          string

	Sound bool
	Debug bool

	// Headless mode: render Ticks frames and write the last one to Snapshot.
	Snapshot string
	Ticks    int
}

// Defaults returns the settings used when no flags are given.
func Defaults() Settings {
	return Settings{
		Width:           WindowWidth,
		Height:          WindowHeight,
		Sides:           DefaultSides,
		Layers:          DefaultLayers,
		BaseSpeed:       DefaultBaseSpeed,
		Decay:           DefaultDecay,
		BaseSize:        DefaultBaseSize,
		Cadence:         DefaultColorCadence,
		ShapeColor:      DefaultShapeColor,
		BackgroundColor: DefaultBackgroundColor,
		Policy:          PolicyRGB,
		Ticks:           120,
	}
}

// RegisterFlags binds s to fs. Values already in s are the flag defaults.
func (s *Settings) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&s.Width, "width", s.Width, "window width in pixels")
	fs.IntVar(&s.Height, "height", s.Height, "window height in pixels")
	fs.IntVar(&s.Sides, "sides", s.Sides, "polygon side count [3,20]")
	fs.IntVar(&s.Layers, "layers", s.Layers, "number of nested layers [5,50]")
	fs.Float64Var(&s.BaseSpeed, "speed", s.BaseSpeed, "base rotation speed in degrees per tick [0.1,20000]")
	fs.Float64Var(&s.Decay, "decay", s.Decay, "per-layer speed decay factor [0.1,20000]")
	fs.Float64Var(&s.BaseSize, "size", s.BaseSize, "outermost polygon size [200,2000]")
	fs.IntVar(&s.Cadence, "cadence", s.Cadence, "ticks between random colour changes (>=1)")
	fs.StringVar(&s.ShapeColor, "shape-color", s.ShapeColor, "shape colour as #rrggbb")
	fs.StringVar(&s.BackgroundColor, "bg-color", s.BackgroundColor, "background colour as #rrggbb")
	fs.StringVar(&s.Policy, "policy", s.Policy, "random colour policy: rgb or palette")
	fs.BoolVar(&s.Sound, "sound", s.Sound, "play sound cues on reverse and speed lock")
	fs.BoolVar(&s.Debug, "debug", s.Debug, "enable debug logging")
	fs.StringVar(&s.Snapshot, "snapshot", s.Snapshot, "render headless and write the final frame to this SVG file")
	fs.IntVar(&s.Ticks, "ticks", s.Ticks, "number of ticks to run in snapshot mode")
}

// Sanitize replaces out-of-range values with their defaults. Bad input is
// never fatal; each replacement is logged.
func (s *Settings) Sanitize(log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	d := Defaults()
	reject := func(name string, v any) {
		log.Warn("ignoring out-of-range setting", zap.String("setting", name), zap.Any("value", v))
	}

	if s.Width <= 0 || s.Height <= 0 {
		reject("window", [2]int{s.Width, s.Height})
		s.Width, s.Height = d.Width, d.Height
	}
	if !ValidSides(s.Sides) {
		reject("sides", s.Sides)
		s.Sides = d.Sides
	}
	if !ValidLayers(s.Layers) {
		reject("layers", s.Layers)
		s.Layers = d.Layers
	}
	if !ValidSpeed(s.BaseSpeed) {
		reject("speed", s.BaseSpeed)
		s.BaseSpeed = d.BaseSpeed
	}
	if !ValidDecay(s.Decay) {
		reject("decay", s.Decay)
		s.Decay = d.Decay
	}
	if !ValidSize(s.BaseSize) {
		reject("size", s.BaseSize)
		s.BaseSize = d.BaseSize
	}
	if !ValidCadence(s.Cadence) {
		reject("cadence", s.Cadence)
		s.Cadence = d.Cadence
	}
	if s.Policy != PolicyRGB && s.Policy != PolicyPalette {
		reject("policy", s.Policy)
		s.Policy = d.Policy
	}
	if s.Ticks < 1 {
		reject("ticks", s.Ticks)
		s.Ticks = d.Ticks
	}
}

func ValidSides(n int) bool { return n >= MinSides && n <= MaxSides }

func ValidLayers(n int) bool { return n >= MinLayers && n <= MaxLayers }

func ValidSpeed(v float64) bool { return v >= MinSpeed && v <= MaxSpeed }

func ValidDecay(v float64) bool { return v >= MinDecay && v <= MaxDecay }

func ValidSize(v float64) bool { return v >= MinBaseSize && v <= MaxBaseSize }

func ValidCadence(n int) bool { return n >= MinColorCadence }
