package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/llehouerou/deezer-flow/internal/launcher"
)

func newQueryCmd(opts *options) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "query <text...>",
		Short: "Run a launcher query and print the entries",
		Long: `Run a launcher query from the terminal, for example:

  deezer-flow query play master of puppets
  deezer-flow query artist metallica --output yaml`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(opts, logs(cmd))
			if err != nil {
				return err
			}
			entries := e.plugin.RunQuery(cmd.Context(), strings.Join(args, " "))
			return writeEntries(out(cmd), entries, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format: text, json, yaml")
	return cmd
}

// writeEntries prints entries in the given format.
func writeEntries(w io.Writer, entries []launcher.Entry, format string) error {
	switch strings.ToLower(format) {
	case "", "text":
		for i, en := range entries {
			fmt.Fprintf(w, "%2d. %s\n", i+1, en.Title)
			if en.SubTitle != "" {
				fmt.Fprintf(w, "    %s\n", en.SubTitle)
			}
			if url := en.URL(); url != "" {
				fmt.Fprintf(w, "    %s\n", url)
			}
		}
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(entries)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
}
