package utils

import "context"

// Backend transfers a single file for one remote scheme.
type Backend interface {
	Name() string
	DownloadFile(ctx context.Context, remotePath, localPath string) error
}

// Chunk describes one named file unit. Fields other than filename are kept
// as-is so callers can carry their own descriptor data alongside.
type Chunk struct {
	Filename string         `yaml:"filename"`
	Extra    map[string]any `yaml:",inline"`
}

// ChunkDownloader fetches chunks from RemoteDir into CacheDir by position.
type ChunkDownloader struct {
	remoteDir string
	cacheDir  string
	chunks    []Chunk
	backend   Backend
}

func NewChunkDownloader(remoteDir, cacheDir string, chunks []Chunk, backend Backend) *ChunkDownloader {
	return &ChunkDownloader{
		remoteDir: remoteDir,
		cacheDir:  cacheDir,
		chunks:    chunks,
		backend:   backend,
	}
}

func (d *ChunkDownloader) RemoteDir() string {
	return d.remoteDir
}

func (d *ChunkDownloader) CacheDir() string {
	return d.cacheDir
}

func (d *ChunkDownloader) Chunks() []Chunk {
	return d.chunks
}

func (d *ChunkDownloader) NumChunks() int {
	return len(d.chunks)
}

func (d *ChunkDownloader) Backend() Backend {
	return d.backend
}
