package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "slackstats",
		Short:   "Slack export analyzer - per-user message, reply, mention and link stats",
		Version: version,
	}

	rootCmd.AddCommand(statsCmd())
	rootCmd.AddCommand(dumpCmd())
	rootCmd.AddCommand(repliesCmd())
	rootCmd.AddCommand(browseCmd())
	rootCmd.AddCommand(doctorCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
