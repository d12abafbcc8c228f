package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.Debug != "" && cfg.Debug != "trace" {
		// DOG_DEBUG may leak in from the test environment; only its
		// semantics are checked here.
		t.Logf("DOG_DEBUG set in environment: %q", cfg.Debug)
	}
}

func TestLoadReadsEnv(t *testing.T) {
	t.Setenv("DOG_DEBUG", "trace")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.Debug != "trace" {
		t.Errorf("Debug = %q, want \"trace\"", cfg.Debug)
	}
	if !cfg.Trace() {
		t.Error("Trace() = false, want true")
	}
}

func TestTrace(t *testing.T) {
	tests := []struct {
		debug string
		want  bool
	}{
		{"", false},
		{"1", false},
		{"yes", false},
		{"trace", true},
	}

	for _, tt := range tests {
		cfg := AppConfig{Debug: tt.debug}
		if got := cfg.Trace(); got != tt.want {
			t.Errorf("Trace() with %q = %v, want %v", tt.debug, got, tt.want)
		}
	}
}
