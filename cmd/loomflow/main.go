package main

import (
	"os"

	"github.com/spf13/cobra"

	"loomflow/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "loomflow",
		Short: "Loomflow - production planning and ticket tracking",
		Long:  `Loomflow turns manufacturing orders into milestone tickets and tracks them across a kanban board.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
