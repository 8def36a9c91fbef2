package local

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/tanq16/chunkfetch/internal/utils"
)

type LocalDownloader struct{}

func NewLocalDownloader() *LocalDownloader {
	return &LocalDownloader{}
}

func (d *LocalDownloader) Name() string {
	return utils.BackendLocal
}

// DownloadFile copies remotePath to localPath, replacing any existing file.
// Paths naming the same file are treated as already fetched.
func (d *LocalDownloader) DownloadFile(ctx context.Context, remotePath, localPath string) error {
	if !utils.FileExists(remotePath) {
		return fmt.Errorf("the provided remote path doesn't exist: %s: %w", remotePath, fs.ErrNotExist)
	}
	if remotePath == localPath {
		log.Debug().Str("op", "local/download").Msgf("%s is already in place", remotePath)
		return nil
	}
	if isDir, err := utils.DirectoryExists(localPath); err == nil && isDir {
		localPath = filepath.Join(localPath, filepath.Base(remotePath))
	}
	// os.Create would truncate the source before it is read.
	if sameFile(remotePath, localPath) {
		log.Debug().Str("op", "local/download").Msgf("%s and %s are the same file", remotePath, localPath)
		return nil
	}
	log.Debug().Str("op", "local/download").Msgf("copying %s to %s", remotePath, localPath)
	return copyFile(remotePath, localPath)
}

// sameFile reports whether both paths exist and name the same file.
func sameFile(a, b string) bool {
	infoA, err := os.Stat(a)
	if err != nil {
		return false
	}
	infoB, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(infoA, infoB)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	info, err := in.Stat()
	if err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()
	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	if err := out.Chmod(info.Mode().Perm()); err != nil {
		return err
	}
	return out.Close()
}

var _ utils.Backend = (*LocalDownloader)(nil)
