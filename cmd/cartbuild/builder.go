package main

import (
	"fmt"
	"os"

	"ticforge/internal/cart"
)

// assembler accumulates section files into a Cartridge before a single
// Build() call, the same accumulate-then-build shape as the teacher's
// rom.ROMBuilder (AddInstruction/AddImmediate then BuildROM), retargeted
// from ROM words to cartridge sections (code text, palette bytes).
type assembler struct {
	cartridge *cart.Cartridge
	bank      int
}

func newAssembler() *assembler {
	return &assembler{cartridge: cart.New()}
}

// SetCode loads a script file's contents as the cartridge's code blob.
func (a *assembler) SetCode(path, lang string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading code file: %w", err)
	}
	a.cartridge.Code = string(data)
	a.cartridge.Lang = lang
	return nil
}

// SetPalette loads exactly 48 raw bytes (16 RGB triples) into the active
// bank's palette, overriding the engine default cart.New() installs.
func (a *assembler) SetPalette(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading palette file: %w", err)
	}
	if len(data) != len(a.cartridge.Banks[a.bank].Palette) {
		return fmt.Errorf("palette file must be exactly %d bytes, got %d", len(a.cartridge.Banks[a.bank].Palette), len(data))
	}
	copy(a.cartridge.Banks[a.bank].Palette[:], data)
	return nil
}

// Build returns the serialized .tic cartridge bytes.
func (a *assembler) Build() []byte {
	return cart.Save(a.cartridge)
}
