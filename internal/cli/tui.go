package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/llehouerou/deezer-flow/internal/icons"
	"github.com/llehouerou/deezer-flow/internal/tui"
)

func newTUICmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Search Deezer interactively in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup(opts, io.Discard) // the screen belongs to the TUI
			if err != nil {
				return err
			}
			return tui.Run(cmd.Context(), e.plugin, icons.For(e.cfg.TUI.Icons))
		},
	}
}
