package mandel

import (
	"strings"
	"testing"
)

func validConfig() Config {
	return Config{
		View:          View{CenterReal: -0.75, Zoom: 1, Width: 64, Height: 48},
		MaxIterations: 100,
		Samples:       1,
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{
			name:    "zero width",
			mutate:  func(c *Config) { c.View.Width = 0 },
			wantErr: "dimensions",
		},
		{
			name:    "negative height",
			mutate:  func(c *Config) { c.View.Height = -3 },
			wantErr: "dimensions",
		},
		{
			name:    "zero zoom",
			mutate:  func(c *Config) { c.View.Zoom = 0 },
			wantErr: "zoom",
		},
		{
			name:    "negative zoom",
			mutate:  func(c *Config) { c.View.Zoom = -1 },
			wantErr: "zoom",
		},
		{
			name:    "zero iterations",
			mutate:  func(c *Config) { c.MaxIterations = 0 },
			wantErr: "iterations",
		},
		{
			name:    "zero samples",
			mutate:  func(c *Config) { c.Samples = 0 },
			wantErr: "supersampling",
		},
		{
			name:    "escape radius too small",
			mutate:  func(c *Config) { c.EscapeRadius = 2 },
			wantErr: "escape radius",
		},
		{
			name:   "explicit valid escape radius",
			mutate: func(c *Config) { c.EscapeRadius = 4 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %q, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_WithDefaults(t *testing.T) {
	cfg := validConfig().withDefaults()
	if cfg.EscapeRadius != DefaultEscapeRadius {
		t.Errorf("EscapeRadius = %v, want %v", cfg.EscapeRadius, DefaultEscapeRadius)
	}
	if cfg.Palette == nil {
		t.Error("Palette not defaulted")
	}

	cfg = validConfig()
	cfg.EscapeRadius = 8
	cfg.Palette = Grayscale
	cfg = cfg.withDefaults()
	if cfg.EscapeRadius != 8 {
		t.Errorf("explicit EscapeRadius overwritten: %v", cfg.EscapeRadius)
	}
}
