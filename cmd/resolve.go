package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tanq16/chunkfetch/internal/output"
	"github.com/tanq16/chunkfetch/internal/scheduler"
)

func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve [REMOTE_DIR]",
		Short: "Show which backend serves a remote directory",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			build, err := scheduler.Resolve(args[0])
			if err != nil {
				output.PrintError(err.Error())
				os.Exit(1)
			}
			backend := build(scheduler.BackendConfig{})
			fmt.Printf("%s %s %s\n", args[0], output.StyleSymbols["arrow"], output.FSuccess(backend.Name()))
		},
	}
}
