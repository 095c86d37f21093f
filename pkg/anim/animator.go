// Package anim drives the tap-triggered presentation values: an expanding,
// fading ripple and a three-phase opacity curve for the overlay sprite.
//
// Both timers share one trigger (the tap) and are advanced cooperatively by
// the host rendering loop. Progress is computed from wall-clock time passed
// in by the caller, never from tick count, so behavior is frame-rate
// independent and fully deterministic under test.
package anim

import (
	"time"

	"github.com/AdiwangCC/face-camera-cat-demo/pkg/overlay"
)

// Timing and size constants for the tap animations.
// RippleMaxRadius is in canvas pixels.
const (
	RippleDuration  = 500 * time.Millisecond
	RippleMaxRadius = 50.0

	// Sprite opacity phases measured from the tap: full until FadeDelay,
	// zero until FadeDelay+FadeHold, then full again at rest.
	FadeDelay = 500 * time.Millisecond
	FadeHold  = 3000 * time.Millisecond
)

// Ripple is the tap ripple's presentation state for one tick
type Ripple struct {
	Origin   overlay.Point // Canvas-space tap location
	Fraction float64       // Progress 0-1 since the tap
}

// Radius returns the ripple radius in canvas pixels
func (r Ripple) Radius() float64 {
	return RippleMaxRadius * r.Fraction
}

// Opacity returns the ripple opacity (1 at tap, 0 at completion)
func (r Ripple) Opacity() float64 {
	return 1 - r.Fraction
}

// State is everything the renderer reads from the animator for one frame
type State struct {
	// Ripple holds the current ripple values. When RippleActive is
	// false the ripple is frozen at completion and must not be drawn.
	Ripple       Ripple
	RippleActive bool

	// SpriteOpacity is the overlay sprite opacity, 0-1. 1.0 at rest.
	SpriteOpacity float64
}

// Animator owns the tap timers. It is not safe for concurrent use; the
// host loop is the single writer and reader, matching the cooperative
// single-threaded model the renderer runs under.
type Animator struct {
	tapped    bool
	tapTime   time.Time
	tapOrigin overlay.Point
}

// New returns an animator at rest: no ripple, sprite fully opaque.
func New() *Animator {
	return &Animator{}
}

// Tap starts both timers. Re-tapping before a sequence completes restarts
// it from phase one: the previous tap's pending transitions are simply
// forgotten (last-tap-wins, no queueing).
func (a *Animator) Tap(origin overlay.Point, now time.Time) {
	a.tapped = true
	a.tapTime = now
	a.tapOrigin = origin
}

// Tick computes the presentation values for the given time.
// It never mutates anything a past Tick returned; calling it with the
// same time twice yields the same state.
func (a *Animator) Tick(now time.Time) State {
	if !a.tapped {
		return State{SpriteOpacity: 1.0}
	}

	elapsed := now.Sub(a.tapTime)

	st := State{SpriteOpacity: 1.0}

	// Ripple: running until RippleDuration, then frozen at max radius
	// with zero opacity.
	if elapsed < 0 {
		elapsed = 0
	}
	fraction := float64(elapsed) / float64(RippleDuration)
	if fraction < 1 {
		st.Ripple = Ripple{Origin: a.tapOrigin, Fraction: fraction}
		st.RippleActive = true
	} else {
		st.Ripple = Ripple{Origin: a.tapOrigin, Fraction: 1}
	}

	// Sprite opacity: full, then zero from FadeDelay, then full again.
	if elapsed >= FadeDelay && elapsed < FadeDelay+FadeHold {
		st.SpriteOpacity = 0.0
	}

	return st
}

// Reset returns the animator to its rest state, discarding any running
// animation. Used on session teardown so no ticks fire afterwards.
func (a *Animator) Reset() {
	a.tapped = false
	a.tapTime = time.Time{}
	a.tapOrigin = overlay.Point{}
}
