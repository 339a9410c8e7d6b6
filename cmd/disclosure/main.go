package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/IYair/disclosure-page-uac-sub000/internal/interfaces/cli/migrate"
	"github.com/IYair/disclosure-page-uac-sub000/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "disclosure",
		Short: "Disclosure - content publishing with moderated review",
		Long:  `Disclosure serves the training-site content API: exercises, notes and news behind a shadow-copy review workflow.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
