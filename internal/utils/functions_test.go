package utils

import (
	"path/filepath"
	"runtime"
	"testing"
)

func TestJoinPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("separator-specific cases")
	}
	tests := []struct {
		dir, name, want string
	}{
		{"s3://bucket/prefix", "chunk.bin", "s3://bucket/prefix/chunk.bin"},
		{"s3://bucket/prefix/", "chunk.bin", "s3://bucket/prefix/chunk.bin"},
		{"s3://bucket", "a/b.bin", "s3://bucket/a/b.bin"},
		{"/data/cache", "chunk.bin", "/data/cache/chunk.bin"},
		{"", "chunk.bin", "chunk.bin"},
		{"/data", "/abs/chunk.bin", "/abs/chunk.bin"},
		{"/data//x", "y", "/data//x/y"},
	}
	for _, tt := range tests {
		if got := JoinPath(tt.dir, tt.name); got != tt.want {
			t.Errorf("JoinPath(%q, %q) = %q, want %q", tt.dir, tt.name, got, tt.want)
		}
	}
}

func TestDirectoryExists(t *testing.T) {
	dir := t.TempDir()
	if ok, err := DirectoryExists(dir); err != nil || !ok {
		t.Errorf("DirectoryExists(%q) = %v, %v", dir, ok, err)
	}
	if ok, err := DirectoryExists(filepath.Join(dir, "missing")); err != nil || ok {
		t.Errorf("missing dir reported as existing: %v, %v", ok, err)
	}
}
