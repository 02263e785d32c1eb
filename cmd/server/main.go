package main

import (
	"log"

	"github.com/spf13/cobra"
)

func main() {
	var envFile string

	rootCmd := &cobra.Command{
		Use:   "agro-dashboard",
		Short: "Aggregates plot, reading and irrigation zone data into dashboard views",
		RunE: func(c *cobra.Command, args []string) error {
			return runServe(c.Context(), envFile)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&envFile, "env-file", "e", ".env", "Path to the .env file")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Poll the backend and serve the dashboard views",
			RunE: func(c *cobra.Command, args []string) error {
				return runServe(c.Context(), envFile)
			},
		},
		&cobra.Command{
			Use:   "snapshot",
			Short: "Fetch once and print the dashboard aggregates as JSON",
			RunE: func(c *cobra.Command, args []string) error {
				return runSnapshot(c.Context(), envFile, c.OutOrStdout())
			},
		},
	)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
