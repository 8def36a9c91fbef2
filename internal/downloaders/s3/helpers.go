package s3

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
	"github.com/tanq16/chunkfetch/internal/utils"
)

func getS3Client(ctx context.Context, cfg ClientConfig) (manager.DownloadAPIClient, error) {
	var loadOpts []func(*config.LoadOptions) error
	if cfg.Profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(cfg.Profile))
	}
	if cfg.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(cfg.Region))
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}
	log.Debug().Str("op", "s3/helpers").Msgf("created client (profile=%q region=%q endpoint=%q)", cfg.Profile, awsCfg.Region, cfg.Endpoint)
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.PathStyle
	}), nil
}

// parseS3URL splits s3://bucket/key into bucket and key. Every leading slash
// of the key is dropped.
func parseS3URL(remotePath string) (string, string, error) {
	obj, err := url.Parse(remotePath)
	if err != nil {
		return "", "", err
	}
	if obj.Scheme != utils.S3Scheme {
		return "", "", fmt.Errorf("%w: expected scheme to be `s3`, instead got %q for remote=%s", utils.ErrInvalidScheme, obj.Scheme, remotePath)
	}
	return obj.Host, strings.TrimLeft(obj.Path, "/"), nil
}
