package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tanq16/chunkfetch/internal/utils"
)

var (
	debug      bool
	configFile string
)

var ChunkfetchVersion = "dev"

var rootCmd = &cobra.Command{
	Use:     "chunkfetch",
	Short:   "chunkfetch materializes chunk files from S3 or local storage into a cache directory",
	Version: ChunkfetchVersion,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		utils.InitLogger(debug)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "f", "", "Path to YAML session file")

	rootCmd.AddCommand(newGetCmd())
	rootCmd.AddCommand(newResolveCmd())
}
