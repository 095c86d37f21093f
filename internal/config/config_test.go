package config

import "testing"

func TestLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	if got := LogLevel(); got != "info" {
		t.Errorf("default log level: got %q, want info", got)
	}

	t.Setenv("LOG_LEVEL", "debug")
	if got := LogLevel(); got != "debug" {
		t.Errorf("log level: got %q, want debug", got)
	}
}

func TestCameraDevice(t *testing.T) {
	t.Setenv("CAMERA_DEVICE", "")
	if got := CameraDevice(); got != 0 {
		t.Errorf("default device: got %d, want 0", got)
	}

	t.Setenv("CAMERA_DEVICE", "2")
	if got := CameraDevice(); got != 2 {
		t.Errorf("device: got %d, want 2", got)
	}

	t.Setenv("CAMERA_DEVICE", "garbage")
	if got := CameraDevice(); got != 0 {
		t.Errorf("unparseable device: got %d, want fallback 0", got)
	}
}

func TestMirrored(t *testing.T) {
	t.Setenv("CAMERA_MIRRORED", "")
	if !Mirrored() {
		t.Error("front camera default must be mirrored")
	}

	t.Setenv("CAMERA_MIRRORED", "false")
	if Mirrored() {
		t.Error("CAMERA_MIRRORED=false must disable mirroring")
	}
}

func TestAssetPaths(t *testing.T) {
	t.Setenv("YUNET_MODEL", "")
	t.Setenv("CAT_SPRITE", "")
	if got := ModelPath(); got != DefaultModelPath {
		t.Errorf("model path: got %q, want default", got)
	}
	if got := SpritePath(); got != DefaultSpritePath {
		t.Errorf("sprite path: got %q, want default", got)
	}

	t.Setenv("YUNET_MODEL", "/tmp/m.onnx")
	t.Setenv("CAT_SPRITE", "/tmp/cat.png")
	if got := ModelPath(); got != "/tmp/m.onnx" {
		t.Errorf("model path override: got %q", got)
	}
	if got := SpritePath(); got != "/tmp/cat.png" {
		t.Errorf("sprite path override: got %q", got)
	}
}
