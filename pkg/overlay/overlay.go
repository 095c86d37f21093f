// Package overlay converts face detections into canvas-space draw
// instructions for the cat-face overlay.
//
// The mapping is a pure geometric transform: letterbox-scale the detected
// bounding box into the canvas, nudge it sideways as the head turns, and
// counter-rotate for head tilt. No rendering API is touched here; the
// output is consumed by an adapter (pkg/render).
package overlay

import (
	"math"

	"github.com/AdiwangCC/face-camera-cat-demo/pkg/detect"
)

// Point is a position in canvas-space pixels
type Point struct {
	X, Y float64
}

// FrameContext describes one frame's coordinate systems
type FrameContext struct {
	SourceWidth  float64 // Camera frame width in pixels
	SourceHeight float64 // Camera frame height in pixels
	CanvasWidth  float64 // Drawing surface width in pixels
	CanvasHeight float64 // Drawing surface height in pixels

	// Mirrored is true when the active camera faces the user.
	// It flips the sign of the yaw offset so the overlay tracks the
	// user's own perception of left and right.
	Mirrored bool
}

// DrawInstruction places one overlay on the canvas.
// Half-extents are given for both the outline box and the sprite; the
// sprite overshoots the detected face by Params.SpriteScale.
type DrawInstruction struct {
	Center          Point
	RotationRadians float64

	RectHalfWidth  float64
	RectHalfHeight float64

	SpriteHalfWidth  float64
	SpriteHalfHeight float64
	SpriteOpacity    float64 // 0-1
}

// Compute maps detections to draw instructions, one per detection, in
// input order. It is pure: identical inputs produce identical outputs.
//
// A non-positive source or canvas dimension yields an empty result
// rather than an error; upstream only intermittently guarantees valid
// dimensions and a live overlay should degrade, not crash.
func Compute(dets []detect.Detection, fc FrameContext, p Params) []DrawInstruction {
	if fc.SourceWidth <= 0 || fc.SourceHeight <= 0 {
		return nil
	}
	if fc.CanvasWidth <= 0 || fc.CanvasHeight <= 0 {
		return nil
	}

	// Uniform letterboxing scale: the mapped box never exceeds the
	// canvas on either axis, aspect ratio preserved.
	scale := math.Min(fc.CanvasWidth/fc.SourceWidth, fc.CanvasHeight/fc.SourceHeight)

	out := make([]DrawInstruction, 0, len(dets))
	for _, d := range dets {
		left := d.Box.Left * scale
		top := d.Box.Top * scale
		right := d.Box.Right * scale
		bottom := d.Box.Bottom * scale

		center := Point{
			X: (left + right) / 2,
			Y: (top + bottom) / 2,
		}

		// Sideways nudge as the head turns, inverted under mirroring.
		// An approximation, not a true 3D reprojection.
		offset := d.YawDegrees * p.YawOffsetFactor
		if fc.Mirrored {
			offset = -offset
		}
		center.X += offset

		halfW := (right - left) / 2
		halfH := (bottom - top) / 2

		out = append(out, DrawInstruction{
			Center: center,
			// Canvas rotation convention is opposite to the
			// detector's roll sign; applied about Center.
			RotationRadians:  -d.RollDegrees * math.Pi / 180,
			RectHalfWidth:    halfW,
			RectHalfHeight:   halfH,
			SpriteHalfWidth:  halfW * p.SpriteScale,
			SpriteHalfHeight: halfH * p.SpriteScale,
			SpriteOpacity:    1.0,
		})
	}

	return out
}

// Corners returns the four canvas-space corners of the outline box,
// rotated about the instruction center. Order: top-left, top-right,
// bottom-right, bottom-left (before rotation).
func (di DrawInstruction) Corners() [4]Point {
	sin := math.Sin(di.RotationRadians)
	cos := math.Cos(di.RotationRadians)

	offsets := [4][2]float64{
		{-di.RectHalfWidth, -di.RectHalfHeight},
		{+di.RectHalfWidth, -di.RectHalfHeight},
		{+di.RectHalfWidth, +di.RectHalfHeight},
		{-di.RectHalfWidth, +di.RectHalfHeight},
	}

	var corners [4]Point
	for i, o := range offsets {
		corners[i] = Point{
			X: di.Center.X + o[0]*cos - o[1]*sin,
			Y: di.Center.Y + o[0]*sin + o[1]*cos,
		}
	}
	return corners
}
