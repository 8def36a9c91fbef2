package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/tanq16/chunkfetch/internal/downloaders/s3"
	"github.com/tanq16/chunkfetch/internal/utils"
	"gopkg.in/yaml.v3"
)

// Session is one fetch session: where chunks live, where they go, and which.
type Session struct {
	RemoteDir string          `yaml:"remote_dir"`
	CacheDir  string          `yaml:"cache_dir"`
	Chunks    []utils.Chunk   `yaml:"chunks"`
	S3        s3.ClientConfig `yaml:"s3"`
}

func Default() Session {
	return Session{
		CacheDir: ".chunkfetch-cache",
	}
}

// LoadFromFile reads a YAML session file on top of Default().
func LoadFromFile(path string) (Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Session{}, fmt.Errorf("read config file: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Session{}, fmt.Errorf("parse config file: %w", err)
	}
	return cfg, nil
}

// Validate checks a session is complete enough to run.
func (s Session) Validate() error {
	if s.CacheDir == "" {
		return errors.New("cache dir is required")
	}
	if len(s.Chunks) == 0 {
		return errors.New("at least one chunk is required")
	}
	for i, c := range s.Chunks {
		if c.Filename == "" {
			return fmt.Errorf("chunk %d has no filename", i)
		}
	}
	return nil
}

// ChunksFromNames builds descriptors for plain file names.
func ChunksFromNames(names []string) []utils.Chunk {
	chunks := make([]utils.Chunk, 0, len(names))
	for _, name := range names {
		chunks = append(chunks, utils.Chunk{Filename: name})
	}
	return chunks
}
