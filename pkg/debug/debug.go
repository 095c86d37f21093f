// Package debug provides global debug logging flags
package debug

import "fmt"

// Enabled controls whether debug logging is active
var Enabled bool

// Overlay controls whether verbose per-frame overlay logs are shown
// (detections, draw instructions, animation state)
// Use --debug-overlay flag to enable these very verbose logs
var Overlay bool

// Log prints a message only if debug mode is enabled
func Log(format string, args ...interface{}) {
	if Enabled {
		fmt.Printf(format, args...)
	}
}

// Logln prints a message with newline only if debug mode is enabled
func Logln(msg string) {
	if Enabled {
		fmt.Println(msg)
	}
}

// OverlayLog prints a message only if overlay debug mode is enabled
func OverlayLog(format string, args ...interface{}) {
	if Overlay {
		fmt.Printf(format, args...)
	}
}
