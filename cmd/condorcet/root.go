package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const flagVerbose = "verbose"

// NewRootCmd creates the offline tooling root command
func NewRootCmd(logger zerolog.Logger) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "condorcet",
		Short:         "Offline tooling for condorcet proposals",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			verbose, err := cmd.Flags().GetBool(flagVerbose)
			if err != nil {
				return err
			}
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
			return nil
		},
	}
	rootCmd.PersistentFlags().Bool(flagVerbose, false, "Log every ballot")
	rootCmd.AddCommand(
		TallyCmd(logger),
		ValidateConfigCmd(logger),
	)
	return rootCmd
}
