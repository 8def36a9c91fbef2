package s3

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/tanq16/chunkfetch/internal/utils"
)

// ClientConfig selects credentials and the endpoint used for each transfer.
type ClientConfig struct {
	Profile   string `yaml:"profile"`
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"`
	PathStyle bool   `yaml:"path_style"`
}

type ClientFunc func(ctx context.Context, cfg ClientConfig) (manager.DownloadAPIClient, error)

type S3Downloader struct {
	config    ClientConfig
	newClient ClientFunc
}

type Option func(*S3Downloader)

// WithClientFunc replaces the AWS client constructor, mostly for tests.
func WithClientFunc(fn ClientFunc) Option {
	return func(d *S3Downloader) {
		d.newClient = fn
	}
}

func NewS3Downloader(cfg ClientConfig, opts ...Option) *S3Downloader {
	d := &S3Downloader{
		config:    cfg,
		newClient: getS3Client,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *S3Downloader) Name() string {
	return utils.BackendS3
}

var _ utils.Backend = (*S3Downloader)(nil)
