// Package designcli defines the rnadesign command tree and its flags.
package designcli

import (
	"fmt"

	"github.com/spf13/cobra"

	"rnadesign/internal/cmdutil"
	"rnadesign/internal/config"
	"rnadesign/internal/version"
)

// RunFunc executes a parsed, validated design invocation.
type RunFunc func(cmd *cobra.Command, o *Options) error

// NewRootCommand creates the root command. run is called by `design`
// once flags and the optional run file are merged and validated.
func NewRootCommand(run RunFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "rnadesign",
		Short:         "rnadesign - RNA sequence design by mean-field annealing",
		Long:          "Design RNA sequences that fold into a target secondary structure.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return cmdutil.Usagef("%v", err)
	})

	cmd.AddCommand(NewDesignCommand(run))
	cmd.AddCommand(NewVersionCommand())
	return cmd
}

// NewDesignCommand creates `design [STRUCTURE]`.
func NewDesignCommand(run RunFunc) *cobra.Command {
	opts := Defaults()

	cmd := &cobra.Command{
		Use:   "design [STRUCTURE]",
		Short: "Design a sequence for a target structure",
		Long: `Relax a position-specific base probability matrix toward low energy
for the target structure, then collate it into a sequence.

The target is a dot-bracket string (argument or --structure), an explicit
pair list (--pairs with --length), or the structure of a --config file.`,
		Example: `  rnadesign design '((((....))))'
  rnadesign design -s '((..))' --preset 1:G --collate incremental
  rnadesign design --pairs 1:12,2:11 -n 12 -f json`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				if cmd.Flags().Changed("structure") {
					return cmdutil.Usagef("structure given both as argument and --structure")
				}
				opts.Structure = args[0]
				_ = cmd.Flags().Set("structure", args[0])
			}
			if opts.Config != "" {
				f, err := config.Load(opts.Config)
				if err != nil {
					return cmdutil.Wrap(cmdutil.ExitUsage, "config", err)
				}
				opts.ApplyFile(f, cmd.Flags().Changed)
			}
			if err := opts.Validate(); err != nil {
				return err
			}
			return run(cmd, &opts)
		},
	}
	opts.Register(cmd.Flags())
	cmd.Flags().SortFlags = false
	return cmd
}

// NewVersionCommand prints the build version.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "rnadesign %s\n", version.Version)
			return err
		},
	}
}
