// Command dumplogs runs a cartridge for a fixed number of ticks with
// logging enabled and writes the captured entries to a file, the same
// shape as the teacher's cmd/dump_logs (flag-based CLI, run N frames,
// filter by component, write formatted entries to -out) retargeted from
// a PPU-register trace onto this engine's component-tagged logger.
package main

import (
	"flag"
	"fmt"
	"os"

	"ticforge/internal/cart"
	"ticforge/internal/logging"
	"ticforge/internal/ram"
	"ticforge/internal/script"
	"ticforge/internal/vm"
)

var componentNames = map[string]logging.Component{
	"raster": logging.ComponentRaster,
	"sound":  logging.ComponentSound,
	"memory": logging.ComponentMemory,
	"input":  logging.ComponentInput,
	"script": logging.ComponentScript,
	"system": logging.ComponentSystem,
}

func main() {
	cartPath := flag.String("cart", "", "path to a cartridge file")
	logFile := flag.String("out", "logs.txt", "output log file")
	maxFrames := flag.Int("frames", 60, "run for N ticks then dump logs")
	component := flag.String("component", "script", "component to capture (raster, sound, memory, input, script, system)")
	flag.Parse()

	if *cartPath == "" {
		fmt.Println("usage: dumplogs -cart <cart> [-out <file>] [-frames <N>] [-component <name>]")
		os.Exit(1)
	}

	comp, ok := componentNames[*component]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown component %q\n", *component)
		os.Exit(1)
	}

	cartData, err := os.ReadFile(*cartPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading cartridge: %v\n", err)
		os.Exit(1)
	}
	c, err := cart.Load(cartData)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error parsing cartridge: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(50000)
	logger.SetComponentEnabled(comp, true)
	logger.SetMinLevel(logging.LevelDebug)

	console := vm.NewWithLogger(c, logger)
	console.Host = script.NewHost()
	if err := console.Host.Init(console, c.Code); err != nil {
		fmt.Fprintf(os.Stderr, "error initializing script host: %v\n", err)
		os.Exit(1)
	}
	console.Start()

	fmt.Printf("running cartridge for %d ticks...\n", *maxFrames)
	out := make([]uint32, ram.ScreenWidth*ram.ScreenHeight)
	for i := 0; i < *maxFrames; i++ {
		console.Tick()
		console.Composite(out)
	}

	entries := logger.Entries()

	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating log file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	fmt.Fprintf(file, "%s logs from %s (%d entries)\n", *component, *cartPath, len(entries))
	fmt.Fprintf(file, "===========================================\n\n")
	for _, e := range entries {
		fmt.Fprintf(file, "[%s] %s: %s\n", e.Timestamp.Format("15:04:05.000"), e.Component, e.Message)
	}

	fmt.Printf("dumped %d %s log entries to %s\n", len(entries), *component, *logFile)
}
