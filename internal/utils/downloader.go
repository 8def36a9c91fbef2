package utils

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// ChunkPaths returns the remote and local paths for the chunk at index.
func (d *ChunkDownloader) ChunkPaths(index int) (string, string, error) {
	if index < 0 || index >= len(d.chunks) {
		return "", "", fmt.Errorf("%w: index %d for %d chunks", ErrChunkIndexOutOfRange, index, len(d.chunks))
	}
	filename := d.chunks[index].Filename
	return JoinPath(d.remoteDir, filename), JoinPath(d.cacheDir, filename), nil
}

// DownloadChunkFromIndex materializes chunk index into the cache directory.
func (d *ChunkDownloader) DownloadChunkFromIndex(ctx context.Context, index int) error {
	remotePath, localPath, err := d.ChunkPaths(index)
	if err != nil {
		return err
	}
	log.Debug().Str("op", "utils/downloader").Msgf("chunk %d: %s -> %s (%s)", index, remotePath, localPath, d.backend.Name())
	return d.backend.DownloadFile(ctx, remotePath, localPath)
}
