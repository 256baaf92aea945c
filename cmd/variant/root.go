package main

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newRootCmd(fs afero.Fs) *cobra.Command {
	var enableLog bool
	logger := log.New(io.Discard, AppName+": ", 0)

	rootCmd := &cobra.Command{
		Use:           AppName,
		Short:         "Render and check tagged variant values",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if enableLog {
				logger.SetOutput(cmd.ErrOrStderr())
				logger.SetFlags(log.LstdFlags)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&enableLog, "log", "v", false, "log progress to stderr")

	rootCmd.AddCommand(
		newPrintCmd(logger),
		newCheckCmd(fs, logger),
		newVersionCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), AppName+" "+Version)
		},
	}
}
