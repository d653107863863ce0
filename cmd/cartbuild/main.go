// Command cartbuild assembles and inspects ticforge cartridges from the
// command line: a cobra CLI in the shape of bradford-hamilton-chippy's
// cmd/root.go (a root command with subcommands, Execute() as the single
// entry point called from main), wrapping internal/cart the way the
// teacher's internal/rom.ROMBuilder wrapped a bespoke ROM format — here
// retargeted at the chunk-cartridge format internal/cart actually reads
// and writes.
package main

func main() {
	Execute()
}
