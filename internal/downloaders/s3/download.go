package s3

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

// DownloadFile fetches the object at remotePath (s3://bucket/key) into
// localPath as one sequential stream. A client is built for every call.
func (d *S3Downloader) DownloadFile(ctx context.Context, remotePath, localPath string) error {
	bucket, key, err := parseS3URL(remotePath)
	if err != nil {
		return err
	}
	client, err := d.newClient(ctx, d.config)
	if err != nil {
		return err
	}
	file, err := os.Create(localPath)
	if err != nil {
		return err
	}
	defer file.Close()

	downloader := manager.NewDownloader(client, func(md *manager.Downloader) {
		md.Concurrency = 1
	})
	log.Debug().Str("op", "s3/download").Msgf("starting download for s3://%s/%s", bucket, key)
	n, err := downloader.Download(ctx, file, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return err
	}
	log.Debug().Str("op", "s3/download").Msgf("wrote %d bytes to %s", n, localPath)
	return file.Close()
}
