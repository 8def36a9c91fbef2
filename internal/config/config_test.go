package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	content := `
remote_dir: s3://bucket/dataset
cache_dir: /tmp/cache
chunks:
  - filename: chunk-0.bin
    chunk_bytes: 1024
  - filename: chunk-1.bin
s3:
  profile: prod
  region: eu-west-1
  endpoint: http://localhost:9000
  path_style: true
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if cfg.RemoteDir != "s3://bucket/dataset" || cfg.CacheDir != "/tmp/cache" {
		t.Errorf("dirs = %q, %q", cfg.RemoteDir, cfg.CacheDir)
	}
	if len(cfg.Chunks) != 2 || cfg.Chunks[1].Filename != "chunk-1.bin" {
		t.Fatalf("chunks = %+v", cfg.Chunks)
	}
	if cfg.Chunks[0].Extra["chunk_bytes"] != 1024 {
		t.Errorf("extra fields not kept: %+v", cfg.Chunks[0].Extra)
	}
	if cfg.S3.Profile != "prod" || cfg.S3.Region != "eu-west-1" || !cfg.S3.PathStyle {
		t.Errorf("s3 = %+v", cfg.S3)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoadFromFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	if err := os.WriteFile(path, []byte("chunks:\n  - filename: a\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if cfg.CacheDir != Default().CacheDir {
		t.Errorf("cache dir = %q, want default", cfg.CacheDir)
	}
}

func TestLoadFromFileErrors(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("chunks: [unterminated"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadFromFile(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		session Session
		wantErr bool
	}{
		{"ok", Session{CacheDir: "c", Chunks: ChunksFromNames([]string{"a"})}, false},
		{"no cache dir", Session{Chunks: ChunksFromNames([]string{"a"})}, true},
		{"no chunks", Session{CacheDir: "c"}, true},
		{"empty filename", Session{CacheDir: "c", Chunks: ChunksFromNames([]string{""})}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.session.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
