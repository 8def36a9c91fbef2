package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// JoinPath appends name to dir with the platform separator without cleaning
// the result, so URL-style dirs like s3://bucket/prefix keep their "//".
func JoinPath(dir, name string) string {
	if filepath.IsAbs(name) || strings.HasPrefix(name, string(filepath.Separator)) {
		return name
	}
	if dir == "" || strings.HasSuffix(dir, string(filepath.Separator)) {
		return dir + name
	}
	return dir + string(filepath.Separator) + name
}

func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func DirectoryExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

func CreateDirectory(path string) error {
	return os.MkdirAll(path, 0755)
}
