package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tanq16/chunkfetch/internal/config"
	"github.com/tanq16/chunkfetch/internal/output"
	"github.com/tanq16/chunkfetch/internal/scheduler"
)

func newGetCmd() *cobra.Command {
	var indices []int
	var profile, region, endpoint string
	var pathStyle bool

	cmd := &cobra.Command{
		Use:   "get [REMOTE_DIR CACHE_DIR CHUNK...]",
		Short: "Fetch chunks by index into the cache directory",
		Long: `Fetch chunk files from a remote directory into a local cache directory.

REMOTE_DIR starting with s3:// is read from S3; anything else is a local path.

Examples:
  chunkfetch get s3://mybucket/dataset ./cache chunk-0.bin chunk-1.bin
  chunkfetch get /mnt/data ./cache chunk-0.bin chunk-1.bin -i 1
  chunkfetch get -f session.yaml --profile myprofile`,
		Run: func(cmd *cobra.Command, args []string) {
			session := config.Default()
			if configFile != "" {
				loaded, err := config.LoadFromFile(configFile)
				if err != nil {
					output.PrintError(err.Error())
					os.Exit(1)
				}
				session = loaded
			}
			if len(args) == 1 {
				output.PrintError("CACHE_DIR is required when REMOTE_DIR is given")
				os.Exit(1)
			}
			if len(args) >= 2 {
				session.RemoteDir = args[0]
				session.CacheDir = args[1]
			}
			if len(args) > 2 {
				session.Chunks = config.ChunksFromNames(args[2:])
			}
			if cmd.Flags().Changed("profile") {
				session.S3.Profile = profile
			}
			if cmd.Flags().Changed("region") {
				session.S3.Region = region
			}
			if cmd.Flags().Changed("endpoint") {
				session.S3.Endpoint = endpoint
			}
			if cmd.Flags().Changed("path-style") {
				session.S3.PathStyle = pathStyle
			}
			if err := session.Validate(); err != nil {
				output.PrintError(err.Error())
				os.Exit(1)
			}

			d, err := scheduler.NewChunkDownloader(session.RemoteDir, session.CacheDir, session.Chunks, scheduler.BackendConfig{S3: session.S3})
			if err != nil {
				output.PrintError(err.Error())
				os.Exit(1)
			}
			output.PrintHeader(fmt.Sprintf("%s %s %s (%s)", session.RemoteDir, output.StyleSymbols["arrow"], session.CacheDir, d.Backend().Name()))
			var selected []int
			if len(indices) > 0 {
				selected = indices
			}
			results, err := scheduler.Run(context.Background(), d, selected)
			for _, r := range results {
				output.PrintInfo(output.FileLine(r.Index, r.LocalPath))
			}
			if err != nil {
				fmt.Printf("%s %s\n", output.FError(output.StyleSymbols["fail"]), output.FError(err.Error()))
				os.Exit(1)
			}
			output.PrintSuccess("Fetched all requested chunks")
		},
	}

	cmd.Flags().IntSliceVarP(&indices, "index", "i", nil, "Chunk index to fetch (repeatable, defaults to all)")
	cmd.Flags().StringVarP(&profile, "profile", "p", "", "AWS profile to use")
	cmd.Flags().StringVar(&region, "region", "", "AWS region override")
	cmd.Flags().StringVar(&endpoint, "endpoint", "", "S3-compatible endpoint URL")
	cmd.Flags().BoolVar(&pathStyle, "path-style", false, "Use path-style S3 addressing")

	return cmd
}
