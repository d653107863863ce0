package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	newCodePath    string
	newLang        string
	newPalettePath string
	newOutPath     string
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "assemble a new cartridge from section files",
	RunE:  runNew,
}

func init() {
	newCmd.Flags().StringVar(&newCodePath, "code", "", "path to the cartridge's code file (required)")
	newCmd.Flags().StringVar(&newLang, "lang", "pxs", "script host language tag to stamp on the cartridge")
	newCmd.Flags().StringVar(&newPalettePath, "palette", "", "optional path to a 48-byte raw RGB palette to override the default")
	newCmd.Flags().StringVar(&newOutPath, "out", "", "output cartridge path (required)")
	newCmd.MarkFlagRequired("code")
	newCmd.MarkFlagRequired("out")
}

func runNew(cmd *cobra.Command, args []string) error {
	a := newAssembler()
	if err := a.SetCode(newCodePath, newLang); err != nil {
		return err
	}
	if newPalettePath != "" {
		if err := a.SetPalette(newPalettePath); err != nil {
			return err
		}
	}
	if err := os.WriteFile(newOutPath, a.Build(), 0644); err != nil {
		return fmt.Errorf("writing cartridge: %w", err)
	}
	fmt.Printf("wrote %s\n", newOutPath)
	return nil
}
