package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/tsatke/variant"
)

func newPrintCmd(logger *log.Logger) *cobra.Command {
	var (
		s       string
		i       int
		f       float64
		b       bool
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "print",
		Short: "Print a variant in plain or verbose form",
		Long: `Print builds a single variant from at most one of the value flags and
prints it. Without a value flag, the variant is void.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var v variant.Variant
			var set []string
			flags := cmd.Flags()
			if flags.Changed("string") {
				v.SetString(s)
				set = append(set, "--string")
			}
			if flags.Changed("int") {
				v.SetInteger(i)
				set = append(set, "--int")
			}
			if flags.Changed("real") {
				v.SetReal(f)
				set = append(set, "--real")
			}
			if flags.Changed("bool") {
				v.SetBoolean(b)
				set = append(set, "--bool")
			}
			if len(set) > 1 {
				return fmt.Errorf("only one value flag allowed, got %v", set)
			}

			logger.Printf("printing %s variant", v.Kind())
			if verbose {
				_, err := variant.WriteVerbose(cmd.OutOrStdout(), v)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout())
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), v)
			return err
		},
	}

	cmd.Flags().StringVar(&s, "string", "", "string value")
	cmd.Flags().IntVar(&i, "int", 0, "integer value")
	cmd.Flags().Float64Var(&f, "real", 0, "real value")
	cmd.Flags().BoolVar(&b, "bool", false, "boolean value")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "print value and kind")
	return cmd
}
