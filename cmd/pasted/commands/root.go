package commands

import (
	"github.com/spf13/cobra"
)

const serviceName = "pasted"

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          serviceName,
		Short:        "Paste-sharing API server",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newServeCommand(),
		newCreateAdminCommand(),
	)

	return rootCmd
}
