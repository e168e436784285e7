package cmd

import (
	"fmt"
	"os"

	"srcbundle/pkg/rsp"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd is the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:           "srcbundle",
	Short:         "srcbundle concatenates source files into a single bundle",
	Long:          `srcbundle collects the source files of the current directory, filters them by language extension, and concatenates them into one output file. Options can be recorded into a response file and replayed with @<path>.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// logger is shared by the subcommands; set once in Execute.
var logger *zap.Logger

func init() {
	RootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}

// Execute expands any @<path> response-file arguments, runs the root
// command, and renders a failure as a single "Error: <message>" line.
// It returns the process exit code.
func Execute(l *zap.Logger) int {
	logger = l

	args, err := rsp.ExpandArgs(afero.NewOsFs(), os.Args[1:])
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return 1
	}
	RootCmd.SetArgs(args)

	if err := RootCmd.Execute(); err != nil {
		fmt.Printf("Error: %v\n", err)
		return 1
	}
	return 0
}
