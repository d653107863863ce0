package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ticforge/internal/cart"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <cartridge>",
	Short: "print a summary of a cartridge's contents",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading cartridge: %w", err)
	}
	c, err := cart.Load(data)
	if err != nil {
		return fmt.Errorf("parsing cartridge: %w", err)
	}

	fmt.Printf("lang:   %s\n", c.Lang)
	fmt.Printf("code:   %d bytes\n", len(c.Code))
	fmt.Printf("binary: %d bytes\n", len(c.Binary))
	fmt.Printf("banks:  %d\n", len(c.Banks))
	return nil
}
