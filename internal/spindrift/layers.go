package spindrift

import "math"

// LayerSet holds the rotation angle and speed of every nested layer.
//
// Speeds cascade from the last layer: speed[i] = baseSpeed * decay^(n-1-i),
// so with decay < 1 layer n-1 turns at the full base speed and layer 0 at
// the most decayed one. A locked set turns every layer at the speed layer 0
// had when Lock was called.
type LayerSet struct {
	angles []float64
	speeds []float64

	baseSpeed float64
	decay     float64
	direction float64 // +1 or -1, flipped by Reverse

	locked      bool
	lockedSpeed float64
}

// NewLayerSet returns a configured set with all angles at zero.
func NewLayerSet(layerCount int, baseSpeed, decay float64) *LayerSet {
	ls := &LayerSet{}
	ls.Configure(layerCount, baseSpeed, decay)
	return ls
}

// Configure rebuilds the set with exactly layerCount layers. It is a
// structural reset: angles go back to zero, lock and reversal are cleared.
func (ls *LayerSet) Configure(layerCount int, baseSpeed, decay float64) {
	if layerCount < 0 {
		layerCount = 0
	}
	ls.angles = make([]float64, layerCount)
	ls.speeds = make([]float64, layerCount)
	ls.direction = 1
	ls.locked = false
	ls.lockedSpeed = 0
	ls.fill(baseSpeed, decay)
}

// RecomputeSpeeds recomputes speeds in place, keeping angles and the current
// direction. It does nothing while locked; the new parameters are still
// remembered for Unlock.
func (ls *LayerSet) RecomputeSpeeds(baseSpeed, decay float64) {
	if ls.locked {
		ls.baseSpeed, ls.decay = baseSpeed, decay
		return
	}
	ls.fill(baseSpeed, decay)
}

func (ls *LayerSet) fill(baseSpeed, decay float64) {
	ls.baseSpeed, ls.decay = baseSpeed, decay
	n := len(ls.speeds)
	for i := range ls.speeds {
		ls.speeds[i] = ls.direction * baseSpeed * math.Pow(decay, float64(n-1-i))
	}
}

// Tick advances every angle by its layer's speed.
func (ls *LayerSet) Tick() {
	for i := range ls.angles {
		ls.angles[i] = wrapAngle(ls.angles[i] + ls.speed(i))
	}
}

func (ls *LayerSet) speed(i int) float64 {
	if ls.locked {
		return ls.lockedSpeed
	}
	return ls.speeds[i]
}

// wrapAngle keeps a in (-360, 360]. Values already in range are returned
// untouched, so slow forward rotation wraps exactly as a-360.
func wrapAngle(a float64) float64 {
	if a > 360 || a <= -360 {
		a = math.Mod(a, 360)
	}
	return a
}

// Reverse flips the direction of every layer. No-op while locked.
func (ls *LayerSet) Reverse() {
	if ls.locked {
		return
	}
	ls.direction = -ls.direction
	for i := range ls.speeds {
		ls.speeds[i] = -ls.speeds[i]
	}
}

// Lock pins every layer to the current speed of layer 0.
func (ls *LayerSet) Lock() {
	if ls.locked || len(ls.speeds) == 0 {
		return
	}
	ls.locked = true
	ls.lockedSpeed = ls.speeds[0]
}

// Unlock restores the cascade from the stored base speed and decay.
func (ls *LayerSet) Unlock() {
	if !ls.locked {
		return
	}
	ls.locked = false
	ls.lockedSpeed = 0
	ls.fill(ls.baseSpeed, ls.decay)
}

// ResetAngles puts every layer back at zero rotation.
func (ls *LayerSet) ResetAngles() {
	for i := range ls.angles {
		ls.angles[i] = 0
	}
}

func (ls *LayerSet) Len() int { return len(ls.angles) }

func (ls *LayerSet) Locked() bool { return ls.locked }

// Reversed reports whether Reverse has been applied an odd number of times
// since the last Configure.
func (ls *LayerSet) Reversed() bool { return ls.direction < 0 }

// Angle returns the rotation of layer i in degrees.
func (ls *LayerSet) Angle(i int) float64 { return ls.angles[i] }

// Angles returns a copy of all rotations.
func (ls *LayerSet) Angles() []float64 {
	return append([]float64(nil), ls.angles...)
}

// Speeds returns the effective per-tick speed of every layer.
func (ls *LayerSet) Speeds() []float64 {
	out := make([]float64, len(ls.speeds))
	for i := range out {
		out[i] = ls.speed(i)
	}
	return out
}
