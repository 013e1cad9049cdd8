package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.ServerPort != "8080" {
		t.Fatalf("unexpected ServerPort: %s", cfg.ServerPort)
	}
	if cfg.FetchTimeout != 10 {
		t.Fatalf("unexpected FetchTimeout: %d", cfg.FetchTimeout)
	}
	if cfg.MaxBatchSize != 10 {
		t.Fatalf("unexpected MaxBatchSize: %d", cfg.MaxBatchSize)
	}
	if cfg.CacheTTLMinutes != 30 {
		t.Fatalf("unexpected CacheTTLMinutes: %d", cfg.CacheTTLMinutes)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("MAX_BATCH_SIZE", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.ServerPort != "9999" {
		t.Fatalf("expected env override for ServerPort, got %s", cfg.ServerPort)
	}
	if cfg.MaxBatchSize != 5 {
		t.Fatalf("expected env override for MaxBatchSize, got %d", cfg.MaxBatchSize)
	}
}
