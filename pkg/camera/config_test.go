package camera

import (
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	configs := map[string]Config{
		"default":     DefaultConfig(),
		"low latency": LowLatencyConfig(),
		"1080p":       HD1080Config(),
	}

	for name, cfg := range configs {
		if errs := cfg.Validate(); len(errs) > 0 {
			t.Errorf("%s config must validate, got %v", name, errs)
		}
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "stock", mutate: func(c *Config) {}, wantErr: false},
		{name: "negative device", mutate: func(c *Config) { c.DeviceID = -1 }, wantErr: true},
		{name: "tiny width", mutate: func(c *Config) { c.Width = 10 }, wantErr: true},
		{name: "huge height", mutate: func(c *Config) { c.Height = 99999 }, wantErr: true},
		{name: "zero framerate", mutate: func(c *Config) { c.Framerate = 0 }, wantErr: true},
		{name: "quality over 100", mutate: func(c *Config) { c.Quality = 150 }, wantErr: true},
		{name: "mirrored off", mutate: func(c *Config) { c.Mirrored = false }, wantErr: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			errs := cfg.Validate()
			if tc.wantErr && len(errs) == 0 {
				t.Error("expected validation errors, got none")
			}
			if !tc.wantErr && len(errs) > 0 {
				t.Errorf("expected no errors, got %v", errs)
			}
		})
	}
}

func TestLowLatencyConfig(t *testing.T) {
	cfg := LowLatencyConfig()
	if cfg.Width != 640 || cfg.Height != 480 {
		t.Errorf("expected 640x480, got %dx%d", cfg.Width, cfg.Height)
	}
	// Everything else stays at defaults
	if cfg.Mirrored != DefaultConfig().Mirrored {
		t.Error("low latency preset must not change mirroring")
	}
}
