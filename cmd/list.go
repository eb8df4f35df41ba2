package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/fioncat/judge/osutils"
	"github.com/fioncat/judge/render"
	"github.com/fioncat/judge/scanner"
	"github.com/fioncat/judge/types"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func Root() *cobra.Command {
	var lo listOptions
	cmd := &cobra.Command{
		Use:   "judge [-t|--tree] [DIR]",
		Short: "List a directory, flat or as a tree",

		SilenceErrors: true,
		SilenceUsage:  true,

		Args: func(cmd *cobra.Command, args []string) error {
			err := cobra.MaximumNArgs(1)(cmd, args)
			if err != nil {
				return showUsage(cmd, err)
			}
			return nil
		},

		RunE: lo.run,
	}
	cmd.SetFlagErrorFunc(showUsage)

	flags := cmd.Flags()
	flags.BoolVarP(&lo.tree, "tree", "t", false, "List subdirectories recursively as a tree")
	flags.BoolVarP(&lo.color, "color", "", false, "Color directory names")
	flags.BoolVarP(&lo.debug, "debug", "", false, "Set log level to debug")

	return cmd
}

// showUsage prints the usage on bad invocations. Listing errors stay
// silenced, they are reported by main.
func showUsage(cmd *cobra.Command, err error) error {
	fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
	return err
}

type listOptions struct {
	tree  bool
	color bool
	debug bool
}

func (lo *listOptions) run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, lo)
	if err != nil {
		return err
	}

	var dir string
	if len(args) > 0 {
		dir = args[0]
	}
	dir, err = osutils.ResolveDir(dir)
	if err != nil {
		return err
	}

	mode := types.ModeFromTree(cfg.Tree)
	logrus.WithFields(logrus.Fields{
		"Dir":  dir,
		"Mode": mode,
	}).Debug("Start listing")

	r := render.New(scanner.NewLocal(cfg.Limits.MaxName), cmd.OutOrStdout(), &render.Options{
		MaxPath: cfg.Limits.MaxPath,
		Color:   cfg.Color && !color.NoColor,
	})
	return r.Render(dir, mode)
}

// loadConfig reads the config file, then lets explicitly set flags win.
func loadConfig(cmd *cobra.Command, lo *listOptions) (*types.Config, error) {
	cfg, err := types.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("tree") {
		cfg.Tree = lo.tree
	}
	if flags.Changed("color") {
		cfg.Color = lo.color
	}
	if flags.Changed("debug") {
		cfg.Debug = lo.debug
	}

	if cfg.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
	logrus.Debugf("The config value is: %+v", cfg)

	return cfg, nil
}
