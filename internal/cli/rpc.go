package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/llehouerou/deezer-flow/internal/errmsg"
	"github.com/llehouerou/deezer-flow/internal/launcher"
)

const rpcCommand = "rpc"

func newRPCCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   rpcCommand + " <json>",
		Short: "Handle a Flow Launcher JSON-RPC request",
		Long: `Handle one Flow Launcher JSON-RPC request, for example:

  deezer-flow rpc '{"method":"query","parameters":["artist metallica"]}'

Query results are written to stdout. Action callbacks (open_url,
play_pause_desktop, stop_desktop) write nothing.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRPC(cmd, opts, args)
		},
	}
}

func runRPC(cmd *cobra.Command, opts *options, args []string) error {
	e, err := setup(opts, logs(cmd))
	if err != nil {
		return err
	}

	req, err := launcher.DecodeRequest([]byte(strings.Join(args, " ")))
	if err != nil {
		e.logger.Error(errmsg.Format(errmsg.OpDecodeRequest, err))
		return err
	}
	e.logger.Debug("rpc request", "method", req.Method, "parameters", len(req.Parameters))

	err = launcher.Dispatch(cmd.Context(), e.plugin, req, out(cmd))
	switch {
	case err == nil:
		return nil
	case req.Method == launcher.MethodQuery:
		e.logger.Error(errmsg.Format(errmsg.OpWriteResponse, err))
		return err
	case errors.Is(err, launcher.ErrUnknownMethod):
		return err
	}
	// the desktop player may not be running; already logged by the plugin
	return nil
}
