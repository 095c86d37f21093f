package anim

import (
	"testing"
	"time"

	"github.com/AdiwangCC/face-camera-cat-demo/pkg/overlay"
)

var t0 = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func at(ms int) time.Time {
	return t0.Add(time.Duration(ms) * time.Millisecond)
}

func TestAnimator_AtRest(t *testing.T) {
	a := New()

	st := a.Tick(at(0))
	if st.SpriteOpacity != 1.0 {
		t.Errorf("sprite opacity at rest: got %v, want 1.0", st.SpriteOpacity)
	}
	if st.RippleActive {
		t.Error("ripple must be inactive before any tap")
	}
}

func TestAnimator_RippleProgress(t *testing.T) {
	origin := overlay.Point{X: 30, Y: 40}

	tests := []struct {
		name        string
		tickMs      int
		active      bool
		wantRadius  float64
		wantOpacity float64
	}{
		{name: "at tap", tickMs: 0, active: true, wantRadius: 0, wantOpacity: 1},
		{name: "halfway", tickMs: 250, active: true, wantRadius: 25, wantOpacity: 0.5},
		{name: "complete", tickMs: 500, active: false, wantRadius: 50, wantOpacity: 0},
		{name: "past complete", tickMs: 900, active: false, wantRadius: 50, wantOpacity: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := New()
			a.Tap(origin, at(0))

			st := a.Tick(at(tc.tickMs))
			if st.RippleActive != tc.active {
				t.Fatalf("active: got %v, want %v", st.RippleActive, tc.active)
			}
			if st.Ripple.Origin != origin {
				t.Errorf("origin: got %+v, want %+v", st.Ripple.Origin, origin)
			}
			if got := st.Ripple.Radius(); got != tc.wantRadius {
				t.Errorf("radius: got %v, want %v", got, tc.wantRadius)
			}
			if got := st.Ripple.Opacity(); got != tc.wantOpacity {
				t.Errorf("opacity: got %v, want %v", got, tc.wantOpacity)
			}
		})
	}
}

func TestAnimator_SpriteOpacityPhases(t *testing.T) {
	tests := []struct {
		name   string
		tickMs int
		want   float64
	}{
		{name: "immediately after tap", tickMs: 0, want: 1.0},
		{name: "just before fade", tickMs: 499, want: 1.0},
		{name: "fade start", tickMs: 500, want: 0.0},
		{name: "mid hold", tickMs: 2000, want: 0.0},
		{name: "just before restore", tickMs: 3499, want: 0.0},
		{name: "restore", tickMs: 3500, want: 1.0},
		{name: "long after", tickMs: 60000, want: 1.0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := New()
			a.Tap(overlay.Point{}, at(0))

			if got := a.Tick(at(tc.tickMs)).SpriteOpacity; got != tc.want {
				t.Errorf("opacity at %dms: got %v, want %v", tc.tickMs, got, tc.want)
			}
		})
	}
}

func TestAnimator_RetapRestartsSequence(t *testing.T) {
	a := New()
	a.Tap(overlay.Point{X: 10, Y: 10}, at(0))

	// Second tap 200ms in, before the first sequence completes.
	second := overlay.Point{X: 90, Y: 90}
	a.Tap(second, at(200))

	// 400ms after the second tap (600ms after the first): still phase 1.
	st := a.Tick(at(600))
	if st.SpriteOpacity != 1.0 {
		t.Errorf("opacity 400ms after retap: got %v, want 1.0 (offsets measure from new tap)", st.SpriteOpacity)
	}
	if !st.RippleActive {
		t.Error("ripple must be running 400ms after retap")
	}
	if st.Ripple.Origin != second {
		t.Errorf("ripple origin: got %+v, want the new tap point", st.Ripple.Origin)
	}

	// 500ms after the second tap: fade begins, first tap's schedule is gone.
	if got := a.Tick(at(700)).SpriteOpacity; got != 0.0 {
		t.Errorf("opacity 500ms after retap: got %v, want 0.0", got)
	}

	// 3500ms after the second tap: restored.
	if got := a.Tick(at(3700)).SpriteOpacity; got != 1.0 {
		t.Errorf("opacity 3500ms after retap: got %v, want 1.0", got)
	}
}

func TestAnimator_TickIsReadOnly(t *testing.T) {
	a := New()
	a.Tap(overlay.Point{X: 5, Y: 5}, at(0))

	// Ticks at arbitrary, out-of-order times must not affect each other:
	// progress is a function of wall-clock time, not tick count.
	a.Tick(at(400))
	a.Tick(at(100))
	first := a.Tick(at(250))
	second := a.Tick(at(250))

	if first != second {
		t.Errorf("same instant produced different states:\n%+v\n%+v", first, second)
	}
	if got := first.Ripple.Radius(); got != 25 {
		t.Errorf("radius at 250ms: got %v, want 25", got)
	}
}

func TestAnimator_Reset(t *testing.T) {
	a := New()
	a.Tap(overlay.Point{X: 1, Y: 2}, at(0))
	a.Reset()

	st := a.Tick(at(600))
	if st.RippleActive {
		t.Error("ripple active after reset")
	}
	if st.SpriteOpacity != 1.0 {
		t.Errorf("sprite opacity after reset: got %v, want 1.0", st.SpriteOpacity)
	}
}
