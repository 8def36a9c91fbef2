package utils

import "errors"

const (
	S3Prefix     = "s3://"
	S3Scheme     = "s3"
	BackendS3    = "s3"
	BackendLocal = "local"
)

var (
	ErrInvalidScheme        = errors.New("invalid remote scheme")
	ErrNoDownloader         = errors.New("no downloader associated")
	ErrChunkIndexOutOfRange = errors.New("chunk index out of range")
)
