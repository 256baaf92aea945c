package main

import (
	"fmt"
	"log"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/tsatke/variant/internal/conformance"
)

func newCheckCmd(fs afero.Fs, logger *log.Logger) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "check [files...]",
		Short: "Run conformance case files",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dir == "" && len(args) == 0 {
				return fmt.Errorf("no case files given, use --dir or pass files")
			}

			runner := conformance.NewRunner(
				conformance.WithFs(fs),
				conformance.WithOutput(cmd.OutOrStdout()),
				conformance.WithLogger(logger),
			)

			var report conformance.Report
			var err error
			if dir != "" {
				logger.Printf("loading case files below %s", dir)
				report, err = runner.RunDir(dir)
			} else {
				report, err = runner.RunFiles(args...)
			}
			if err != nil {
				return err
			}
			if n := report.Failed(); n > 0 {
				return fmt.Errorf("%d case(s) failed", n)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "run every .yaml file below this directory")
	return cmd
}
