package spindrift

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

var (
	green    = RGB{G: 255}
	red      = RGB{R: 255}
	darkGrey = RGB{R: 0x1a, G: 0x1a, B: 0x1a}
)

func TestColorEngineGreenToRed(t *testing.T) {
	e := NewColorEngine(ColorPair{Shape: green, Background: darkGrey}, 60)
	if !e.Begin(ColorPair{Shape: red, Background: darkGrey}) {
		t.Fatal("Begin returned false on an idle engine")
	}

	for tick := 1; tick <= 60; tick++ {
		done := e.Tick()
		cur := e.Current().Shape

		switch {
		case tick == 30:
			if cur.R != 128 || cur.G != 128 || cur.B != 0 {
				t.Errorf("tick 30: got %v, want R=128 G=128 B=0", cur)
			}
		case tick < 60:
			if done {
				t.Fatalf("tick %d: transition finished early", tick)
			}
			if !e.InFlight() {
				t.Fatalf("tick %d: not in flight", tick)
			}
		case tick == 60:
			if !done {
				t.Error("tick 60: Tick did not report completion")
			}
			if cur != red {
				t.Errorf("tick 60: got %v, want exactly %v", cur, red)
			}
			if e.InFlight() {
				t.Error("tick 60: still in flight")
			}
		}
		if bg := e.Current().Background; bg != darkGrey {
			t.Fatalf("tick %d: background drifted to %v", tick, bg)
		}
	}

	if e.Tick() {
		t.Error("Tick on an idle engine reported completion")
	}
}

func TestColorEngineFollowsLerp(t *testing.T) {
	start := ColorPair{Shape: RGB{R: 10, G: 200, B: 33}, Background: RGB{R: 250, G: 1, B: 128}}
	target := ColorPair{Shape: RGB{R: 240, G: 3, B: 34}, Background: RGB{R: 0, G: 255, B: 127}}
	e := NewColorEngine(start, 7)
	e.Begin(target)

	for e.InFlight() {
		e.Tick()
		want := LerpPair(start, target, e.Progress())
		if diff := cmp.Diff(want, e.Current()); diff != "" {
			t.Fatalf("progress %v mismatch (-want +got):\n%s", e.Progress(), diff)
		}
	}
	if e.Current() != target {
		t.Errorf("final = %v, want %v", e.Current(), target)
	}
}

func TestColorEngineSameColorCompletesImmediately(t *testing.T) {
	c := ColorPair{Shape: green, Background: darkGrey}
	e := NewColorEngine(c, 60)
	e.Begin(c)

	if e.Current() != c {
		t.Fatalf("current changed on Begin: %v", e.Current())
	}
	if !e.Tick() {
		t.Fatal("transition to the same colour took more than one tick")
	}
	if e.Current() != c || e.InFlight() {
		t.Errorf("got current=%v inFlight=%v", e.Current(), e.InFlight())
	}
}

func TestColorEngineSingleTransition(t *testing.T) {
	e := NewColorEngine(ColorPair{Shape: green, Background: darkGrey}, 10)
	e.Begin(ColorPair{Shape: red, Background: darkGrey})
	e.Tick()

	if e.Begin(ColorPair{Shape: RGB{B: 255}, Background: red}) {
		t.Fatal("second Begin accepted while in flight")
	}
	if got := e.Target().Shape; got != red {
		t.Errorf("target replaced: %v", got)
	}
	for e.InFlight() {
		e.Tick()
	}
	if got := e.Current().Shape; got != red {
		t.Errorf("final shape = %v, want %v", got, red)
	}
}

func TestColorEngineBeginHexFailsSoft(t *testing.T) {
	start := ColorPair{Shape: green, Background: darkGrey}
	e := NewColorEngine(start, 4)

	e.BeginHex("#zzzzzz", "#ff0000")
	for e.InFlight() {
		e.Tick()
	}
	want := ColorPair{Shape: green, Background: red}
	if diff := cmp.Diff(want, e.Current()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestColorEngineSet(t *testing.T) {
	e := NewColorEngine(ColorPair{Shape: green, Background: darkGrey}, 60)
	e.Begin(ColorPair{Shape: red, Background: red})
	e.Tick()

	c := ColorPair{Shape: RGB{B: 255}, Background: RGB{}}
	e.Set(c)
	if e.InFlight() {
		t.Error("Set left the transition running")
	}
	if e.Tick() {
		t.Error("Tick after Set reported completion")
	}
	if e.Current() != c {
		t.Errorf("current = %v, want %v", e.Current(), c)
	}
}
