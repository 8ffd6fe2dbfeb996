// Command aabb transforms axis-aligned bounding boxes from the command
// line and checks the scalar and vector realizations against each other.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-aabb/internal/log"
)

var logger = log.New("aabb")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose, veryVerbose bool

	root := &cobra.Command{
		Use:           "aabb",
		Short:         "transform axis-aligned bounding boxes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			switch {
			case veryVerbose:
				log.SetLevel(log.Debug)
			case verbose:
				log.SetLevel(log.Info)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "v", "v", false, "enable verbose logging")
	root.PersistentFlags().BoolVar(&veryVerbose, "vv", false, "enable even more verbose logging")

	root.AddCommand(newTransformCmd(), newCompareCmd(), newCPUInfoCmd())
	return root
}
