package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cartbuild",
	Short: "cartbuild assembles and inspects ticforge cartridges",
	Long:  "cartbuild assembles a cartridge from section files (code, palette) and inspects existing cartridges.",
}

func init() {
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(inspectCmd)
}

// Execute runs cartbuild according to the user's command/subcommand/flags.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
