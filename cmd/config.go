package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/fioncat/judge/osutils"
	"github.com/fioncat/judge/types"
	"github.com/spf13/cobra"
)

func Config() *cobra.Command {
	var showJson bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective config",

		Args: cobra.ExactArgs(0),

		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := types.LoadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			out := cmd.OutOrStdout()

			if showJson {
				data, err := json.MarshalIndent(cfg, "", "  ")
				if err != nil {
					return fmt.Errorf("Marshal json config: %w", err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			path := cfg.Path
			if path == "" {
				path = "(default)"
			}
			rows := [][]string{
				{"path", path},
				{"tree", strconv.FormatBool(cfg.Tree)},
				{"color", strconv.FormatBool(cfg.Color)},
				{"debug", strconv.FormatBool(cfg.Debug)},
				{"limits.maxPath", humanize.Comma(int64(cfg.Limits.MaxPath))},
				{"limits.maxName", humanize.Comma(int64(cfg.Limits.MaxName))},
			}
			osutils.ShowTable(out, []string{"Key", "Value"}, rows)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showJson, "json", "J", false, "Show json output")

	return cmd
}
