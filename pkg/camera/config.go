// Package camera provides configurable frame acquisition for catcam.
// It follows the same pattern as pkg/overlay for tunable parameters.
package camera

// Config holds all camera configuration parameters.
type Config struct {
	// === Device ===
	DeviceID int  `json:"device_id"` // Capture device index
	Mirrored bool `json:"mirrored"`  // True when the camera faces the user

	// === Resolution ===
	Width     int `json:"width"`     // Frame width in pixels
	Height    int `json:"height"`    // Frame height in pixels
	Framerate int `json:"framerate"` // Target FPS
	Quality   int `json:"quality"`   // JPEG quality 1-100 for detector handoff
}

// Capture bounds accepted by Validate.
const (
	MaxWidth     = 4608
	MaxHeight    = 2592
	MaxFramerate = 120
)

// DefaultConfig returns the recommended front-camera configuration.
// 720p keeps detection latency low while leaving enough face pixels
// for stable landmarks.
func DefaultConfig() Config {
	return Config{
		DeviceID:  0,
		Mirrored:  true,
		Width:     1280,
		Height:    720,
		Framerate: 30,
		Quality:   85,
	}
}

// LowLatencyConfig returns the original 640x480 configuration.
// Use this if higher resolution slows detection too much.
func LowLatencyConfig() Config {
	cfg := DefaultConfig()
	cfg.Width = 640
	cfg.Height = 480
	return cfg
}

// HD1080Config returns 1080p Full HD configuration.
func HD1080Config() Config {
	cfg := DefaultConfig()
	cfg.Width = 1920
	cfg.Height = 1080
	return cfg
}

// Validate checks if the config values are within valid ranges.
// Returns a list of validation errors, or nil if valid.
func (c *Config) Validate() []string {
	var errors []string

	if c.DeviceID < 0 {
		errors = append(errors, "device_id must not be negative")
	}
	if c.Width < 160 || c.Width > MaxWidth {
		errors = append(errors, "width must be between 160 and 4608")
	}
	if c.Height < 120 || c.Height > MaxHeight {
		errors = append(errors, "height must be between 120 and 2592")
	}
	if c.Framerate < 1 || c.Framerate > MaxFramerate {
		errors = append(errors, "framerate must be between 1 and 120")
	}
	if c.Quality < 1 || c.Quality > 100 {
		errors = append(errors, "quality must be between 1 and 100")
	}

	return errors
}
