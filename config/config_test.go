package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSchedulerConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	content := []byte("port: 8080\nscheduler:\n  default_policy: srtf\n  round_robin:\n    time_quantum: 4\n")
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSchedulerConfig(dir)
	if err != nil {
		t.Fatalf("LoadSchedulerConfig failed: %v", err)
	}
	if cfg.Port != 8080 || cfg.DefaultPolicy != "srtf" || cfg.RoundRobinTimeQuantum != 4 {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestLoadSchedulerConfigDefaults(t *testing.T) {
	cfg, err := LoadSchedulerConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadSchedulerConfig failed: %v", err)
	}
	if cfg.Port != 9095 || cfg.DefaultPolicy != "fcfs" || cfg.RoundRobinTimeQuantum != 2 {
		t.Errorf("unexpected defaults %+v", cfg)
	}
}

func TestLoadSchedulerConfigEnvOverride(t *testing.T) {
	t.Setenv("SCHEDULER_SCHEDULER_ROUND_ROBIN_TIME_QUANTUM", "7")
	t.Setenv("SCHEDULER_PORT", "9000")

	cfg, err := LoadSchedulerConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadSchedulerConfig failed: %v", err)
	}
	if cfg.RoundRobinTimeQuantum != 7 || cfg.Port != 9000 {
		t.Errorf("Expected env overrides, got %+v", cfg)
	}
}
