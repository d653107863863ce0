// Command player is the SDL2 windowed reference host: it loads a
// cartridge, drives it through the bundled pxs script host, and presents
// the composited framebuffer in a resizable window. The CLI flags (-cart,
// -scale, -log) and frame-loop shape follow the teacher's cmd/emulator;
// the SDL window/texture/event-pump wiring follows flga-vnes's cmd/nes.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"ticforge/internal/cart"
	"ticforge/internal/logging"
	"ticforge/internal/ram"
	"ticforge/internal/script"
	"ticforge/internal/vm"
)

func init() {
	runtime.LockOSThread()
}

// keyButtons maps SDL keycodes to pad-0 buttons, the arrow-keys-plus-ZX
// layout TIC-80 style fantasy consoles use by convention.
var keyButtons = map[sdl.Keycode]ram.Button{
	sdl.K_UP:    ram.ButtonUp,
	sdl.K_DOWN:  ram.ButtonDown,
	sdl.K_LEFT:  ram.ButtonLeft,
	sdl.K_RIGHT: ram.ButtonRight,
	sdl.K_z:     ram.ButtonA,
	sdl.K_x:     ram.ButtonB,
	sdl.K_a:     ram.ButtonX,
	sdl.K_s:     ram.ButtonY,
}

func main() {
	cartPath := flag.String("cart", "", "path to a cartridge file")
	scale := flag.Int("scale", 4, "display scale (1-8)")
	enableLog := flag.Bool("log", false, "enable script-component logging")
	flag.Parse()

	if *cartPath == "" {
		fmt.Println("usage: player -cart <path-to-cart> [-scale 1-8] [-log]")
		os.Exit(1)
	}
	if *scale < 1 || *scale > 8 {
		fmt.Fprintln(os.Stderr, "scale must be between 1 and 8")
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

	var console *vm.Console
	if *enableLog {
		logger := logging.New(10000)
		logger.SetComponentEnabled(logging.ComponentScript, true)
		logger.SetMinLevel(logging.LevelInfo)
		console = vm.NewWithLogger(c, logger)
	} else {
		console = vm.New(c)
	}

	host := script.NewHost()
	console.Host = host
	console.OnError = func(message string, color uint8) {
		fmt.Fprintf(os.Stderr, "script error: %s\n", message)
	}
	if err := host.Init(console, c.Code); err != nil {
		fmt.Fprintf(os.Stderr, "error initializing script host: %v\n", err)
		os.Exit(1)
	}
	console.Start()

	if err := run(console, int32(*scale)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(console *vm.Console, scale int32) error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("unable to init sdl: %w", err)
	}
	defer sdl.Quit()

	win, err := newPlayerWindow(scale, "ticforge player")
	if err != nil {
		return err
	}
	defer win.Close()

	frame := make([]uint32, ram.ScreenWidth*ram.ScreenHeight)

	ticker := time.NewTicker(time.Second / time.Duration(ram.FrameRate))
	defer ticker.Stop()

	running := true
	for running {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch evt := event.(type) {
			case *sdl.QuitEvent:
				running = false
			case *sdl.KeyboardEvent:
				handleKey(console, evt)
			}
		}
		if !running {
			break
		}

		<-ticker.C
		if !console.Paused() {
			console.Tick()
		}
		console.Composite(frame)
		if err := win.Render(frame); err != nil {
			return err
		}
	}

	return nil
}

func handleKey(console *vm.Console, evt *sdl.KeyboardEvent) {
	if evt.Keysym.Sym == sdl.K_ESCAPE && evt.Type == sdl.KEYDOWN {
		console.Stop()
		return
	}
	if evt.Keysym.Sym == sdl.K_SPACE && evt.Type == sdl.KEYUP {
		if console.Paused() {
			console.Resume()
		} else {
			console.Pause()
		}
		return
	}
	if b, ok := keyButtons[evt.Keysym.Sym]; ok {
		console.SetButton(0, b, evt.Type == sdl.KEYDOWN)
	}
}
