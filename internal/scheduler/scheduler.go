package scheduler

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/tanq16/chunkfetch/internal/downloaders/local"
	"github.com/tanq16/chunkfetch/internal/downloaders/s3"
	"github.com/tanq16/chunkfetch/internal/utils"
)

// BackendConfig carries per-backend settings; each constructor reads its own part.
type BackendConfig struct {
	S3 s3.ClientConfig
}

// Constructor builds a backend for one remote scheme.
type Constructor func(cfg BackendConfig) utils.Backend

type registryEntry struct {
	prefix string
	build  Constructor
}

// downloaderRegistry is checked in order; the empty prefix matches anything.
var downloaderRegistry = []registryEntry{
	{prefix: utils.S3Prefix, build: newS3Backend},
	{prefix: "", build: newLocalBackend},
}

func newS3Backend(cfg BackendConfig) utils.Backend {
	return s3.NewS3Downloader(cfg.S3)
}

func newLocalBackend(BackendConfig) utils.Backend {
	return local.NewLocalDownloader()
}

// Resolve returns the constructor of the first backend whose prefix starts remoteDir.
func Resolve(remoteDir string) (Constructor, error) {
	return resolveFrom(downloaderRegistry, remoteDir)
}

func resolveFrom(registry []registryEntry, remoteDir string) (Constructor, error) {
	for _, entry := range registry {
		if strings.HasPrefix(remoteDir, entry.prefix) {
			return entry.build, nil
		}
	}
	return nil, fmt.Errorf("%w: the provided remote dir %q doesn't have a downloader associated", utils.ErrNoDownloader, remoteDir)
}

// NewChunkDownloader resolves the backend for remoteDir and binds it to the chunk list.
func NewChunkDownloader(remoteDir, cacheDir string, chunks []utils.Chunk, cfg BackendConfig) (*utils.ChunkDownloader, error) {
	build, err := Resolve(remoteDir)
	if err != nil {
		return nil, err
	}
	return utils.NewChunkDownloader(remoteDir, cacheDir, chunks, build(cfg)), nil
}

type Result struct {
	Index     int
	Filename  string
	LocalPath string
}

// Run fetches the given chunk indices one after another and stops at the
// first failure. A nil indices slice means every chunk in order.
func Run(ctx context.Context, d *utils.ChunkDownloader, indices []int) ([]Result, error) {
	sessionID := uuid.NewString()
	logger := log.With().Str("session", sessionID[:8]).Str("backend", d.Backend().Name()).Logger()
	if indices == nil {
		indices = make([]int, d.NumChunks())
		for i := range indices {
			indices[i] = i
		}
	}
	if err := utils.CreateDirectory(d.CacheDir()); err != nil {
		return nil, fmt.Errorf("error creating cache directory: %w", err)
	}
	logger.Info().Str("op", "scheduler/run").Msgf("fetching %d chunk(s) from %s", len(indices), d.RemoteDir())

	results := make([]Result, 0, len(indices))
	for _, idx := range indices {
		_, localPath, err := d.ChunkPaths(idx)
		if err != nil {
			return results, err
		}
		if err := d.DownloadChunkFromIndex(ctx, idx); err != nil {
			logger.Error().Str("op", "scheduler/run").Err(err).Msgf("chunk %d failed", idx)
			return results, fmt.Errorf("chunk %d: %w", idx, err)
		}
		results = append(results, Result{
			Index:     idx,
			Filename:  d.Chunks()[idx].Filename,
			LocalPath: localPath,
		})
		logger.Debug().Str("op", "scheduler/run").Msgf("chunk %d stored at %s", idx, localPath)
	}
	logger.Info().Str("op", "scheduler/run").Msgf("fetched %d chunk(s) into %s", len(results), d.CacheDir())
	return results, nil
}
