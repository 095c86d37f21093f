package overlay

import (
	"fmt"
	"sync"

	"github.com/AdiwangCC/face-camera-cat-demo/pkg/detect"
)

// Params holds the tunable overlay constants.
// Both values come from the original app untuned; they are kept as
// named parameters rather than guessed "correct" values.
type Params struct {
	// YawOffsetFactor converts head yaw degrees into a horizontal
	// canvas offset in pixels per degree.
	YawOffsetFactor float64 `json:"yaw_offset_factor"`

	// SpriteScale enlarges the sprite relative to the outline box so
	// the overlay visually overshoots the detected face.
	SpriteScale float64 `json:"sprite_scale"`
}

// DefaultParams returns the stock overlay parameters.
func DefaultParams() Params {
	return Params{
		YawOffsetFactor: 0.5,
		SpriteScale:     1.6,
	}
}

// Validate checks that the parameters are usable.
// Returns a list of validation errors, or nil if valid.
func (p Params) Validate() []string {
	var errors []string
	if p.SpriteScale <= 0 {
		errors = append(errors, "sprite_scale must be positive")
	}
	if p.YawOffsetFactor < 0 {
		errors = append(errors, "yaw_offset_factor must not be negative")
	}
	return errors
}

// Engine computes draw instructions with runtime-adjustable parameters.
// Compute itself stays pure; the engine only guards the parameter set.
type Engine struct {
	params Params
	mu     sync.RWMutex
}

// NewEngine creates an engine with the given parameters.
func NewEngine(p Params) *Engine {
	return &Engine{params: p}
}

// Params returns the current parameters.
func (e *Engine) Params() Params {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.params
}

// SetParams replaces the parameters after validation.
func (e *Engine) SetParams(p Params) error {
	if errs := p.Validate(); len(errs) > 0 {
		return fmt.Errorf("validation failed: %v", errs)
	}
	e.mu.Lock()
	e.params = p
	e.mu.Unlock()
	return nil
}

// Compute maps detections to draw instructions using the current parameters.
func (e *Engine) Compute(dets []detect.Detection, fc FrameContext) []DrawInstruction {
	return Compute(dets, fc, e.Params())
}
