// Package config provides configuration helpers for catcam commands.
package config

import (
	"os"
	"strconv"
)

// Default asset locations relative to the working directory.
const (
	DefaultModelPath  = "models/face_detection_yunet.onnx"
	DefaultSpritePath = "assets/cat_face.png"
)

// LogLevel returns the log level from LOG_LEVEL env var.
// Defaults to "info".
func LogLevel() string {
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		return lvl
	}
	return "info"
}

// CameraDevice returns the capture device ID from CAMERA_DEVICE env var.
// Defaults to 0 (the first camera).
func CameraDevice() int {
	if dev := os.Getenv("CAMERA_DEVICE"); dev != "" {
		if id, err := strconv.Atoi(dev); err == nil {
			return id
		}
	}
	return 0
}

// Mirrored reports whether the camera faces the user.
// Defaults to true since the app targets a front-facing camera; set
// CAMERA_MIRRORED=false for a rear or external camera.
func Mirrored() bool {
	if v := os.Getenv("CAMERA_MIRRORED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return true
}

// ModelPath returns the YuNet model path from YUNET_MODEL env var or default.
func ModelPath() string {
	if p := os.Getenv("YUNET_MODEL"); p != "" {
		return p
	}
	return DefaultModelPath
}

// SpritePath returns the overlay sprite path from CAT_SPRITE env var or default.
func SpritePath() string {
	if p := os.Getenv("CAT_SPRITE"); p != "" {
		return p
	}
	return DefaultSpritePath
}
