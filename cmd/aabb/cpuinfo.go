package main

import (
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-aabb/aabb"
	"github.com/ajroetker/go-aabb/internal/cpuinfo"
)

func newCPUInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cpuinfo",
		Short: "print detected CPU features and the selected transform",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cpuinfo.Report(cmd.OutOrStdout(), aabb.BestName())
		},
	}
}
