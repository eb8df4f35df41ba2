package cmd

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/fioncat/judge/osutils"
	"github.com/fioncat/judge/types"
	"github.com/spf13/cobra"
)

// BuildInfo is filled by ldflags in main.
type BuildInfo struct {
	Version string
	Type    string
	Commit  string
	Time    string
}

func Version(info *BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show judge full version info",

		Args: cobra.ExactArgs(0),

		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := types.LoadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			configPath := cfg.Path
			if configPath == "" {
				configPath = "(none)"
			}
			rows := [][]string{
				{"judge", info.Version},
				{"golang", strings.TrimPrefix(runtime.Version(), "go")},
				{"build type", info.Type},
				{"build target", runtime.GOOS + "-" + runtime.GOARCH},
				{"commit sha", info.Commit},
				{"build time", info.Time},
				{"config path", configPath},
			}
			osutils.ShowTable(cmd.OutOrStdout(), []string{"Name", "Value"}, rows)
			return nil
		},
	}
}
