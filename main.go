package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/fioncat/judge/cmd"
)

var (
	Version     = "N/A"
	BuildType   = "N/A"
	BuildCommit = "N/A"
	BuildTime   = "N/A"
)

func main() {
	rootCmd := cmd.Root()
	rootCmd.Version = Version

	rootCmd.AddCommand(cmd.Config())
	rootCmd.AddCommand(cmd.Version(&cmd.BuildInfo{
		Version: Version,
		Type:    BuildType,
		Commit:  BuildCommit,
		Time:    BuildTime,
	}))

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", color.RedString("Error"), err)
		os.Exit(1)
	}
}
