package spindrift

// ColorEngine runs at most one linear colour transition at a time.
// It only interpolates; choosing the next target is up to the caller.
type ColorEngine struct {
	current ColorPair
	start   ColorPair
	target  ColorPair

	total    int
	elapsed  int
	inFlight bool
}

// NewColorEngine returns an idle engine showing initial. totalFrames below
// one is treated as one.
func NewColorEngine(initial ColorPair, totalFrames int) *ColorEngine {
	if totalFrames < 1 {
		totalFrames = 1
	}
	return &ColorEngine{
		current: initial,
		start:   initial,
		target:  initial,
		total:   totalFrames,
	}
}

// Begin starts a transition from the current colours to target. It returns
// false and does nothing if a transition is already running.
func (e *ColorEngine) Begin(target ColorPair) bool {
	if e.inFlight {
		return false
	}
	e.start = e.current
	e.target = target
	e.elapsed = 0
	e.inFlight = true
	return true
}

// BeginHex is Begin for hex input. A malformed value keeps the current
// colour for that half of the pair.
func (e *ColorEngine) BeginHex(shape, background string) bool {
	target := e.current
	if c, err := ParseHex(shape); err == nil {
		target.Shape = c
	}
	if c, err := ParseHex(background); err == nil {
		target.Background = c
	}
	return e.Begin(target)
}

// Tick advances a running transition by one frame and reports whether it
// finished on this tick.
func (e *ColorEngine) Tick() bool {
	if !e.inFlight {
		return false
	}
	e.elapsed++
	progress := e.Progress()
	if progress >= 1 || e.start == e.target {
		e.current = e.target
		e.inFlight = false
		return true
	}
	e.current = LerpPair(e.start, e.target, progress)
	return false
}

// Set replaces the current colours immediately. A running transition is
// abandoned.
func (e *ColorEngine) Set(c ColorPair) {
	e.current = c
	e.start = c
	e.target = c
	e.elapsed = 0
	e.inFlight = false
}

func (e *ColorEngine) Current() ColorPair { return e.current }

func (e *ColorEngine) Target() ColorPair { return e.target }

func (e *ColorEngine) InFlight() bool { return e.inFlight }

// Progress is elapsed/total for the running or last transition.
func (e *ColorEngine) Progress() float64 {
	return float64(e.elapsed) / float64(e.total)
}
