package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPlayPauseCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "play-pause",
		Short: "Toggle playback of the Deezer desktop app",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup(opts, logs(cmd))
			if err != nil {
				return err
			}
			return e.plugin.PlayPause(cmd.Context())
		},
	}
}

func newStopCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the Deezer desktop app",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup(opts, logs(cmd))
			if err != nil {
				return err
			}
			return e.plugin.Stop(cmd.Context())
		},
	}
}

func newStatusCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print the playback status of the desktop player",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup(opts, logs(cmd))
			if err != nil {
				return err
			}
			status, err := e.plugin.Status(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(out(cmd), status)
			return nil
		},
	}
}

func newOpenCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "open <url>",
		Short: "Open a Deezer link in the browser",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(opts, logs(cmd))
			if err != nil {
				return err
			}
			return e.plugin.OpenURL(cmd.Context(), args[0])
		},
	}
}
