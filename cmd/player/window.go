package main

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"ticforge/internal/ram"
)

// playerWindow owns the SDL window/renderer/texture triple, the same
// shape as flga-vnes's gameWindow: a streaming texture sized to the
// console's native resolution, blitted scaled-up into a resizable
// window every tick.
type playerWindow struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	tex      *sdl.Texture
	pixels   []byte
}

func newPlayerWindow(scale int32, title string) (*playerWindow, error) {
	w := int32(ram.ScreenWidth) * scale
	h := int32(ram.ScreenHeight) * scale

	window, renderer, err := sdl.CreateWindowAndRenderer(w, h, sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}
	window.SetTitle(title)

	tex, err := renderer.CreateTexture(sdl.PIXELFORMAT_RGBA8888, sdl.TEXTUREACCESS_STREAMING, ram.ScreenWidth, ram.ScreenHeight)
	if err != nil {
		return nil, fmt.Errorf("creating texture: %w", err)
	}

	return &playerWindow{
		window:   window,
		renderer: renderer,
		tex:      tex,
		pixels:   make([]byte, ram.ScreenWidth*ram.ScreenHeight*4),
	}, nil
}

// Render copies a composited RGBA (0xRRGGBBAA per pixel) framebuffer into
// the streaming texture and presents it scaled to the window.
func (w *playerWindow) Render(frame []uint32) error {
	for i, px := range frame {
		o := i * 4
		w.pixels[o] = byte(px >> 24)
		w.pixels[o+1] = byte(px >> 16)
		w.pixels[o+2] = byte(px >> 8)
		w.pixels[o+3] = byte(px)
	}

	if err := w.tex.Update(nil, w.pixels, ram.ScreenWidth*4); err != nil {
		return fmt.Errorf("updating texture: %w", err)
	}
	if err := w.renderer.Clear(); err != nil {
		return fmt.Errorf("clearing renderer: %w", err)
	}
	if err := w.renderer.Copy(w.tex, nil, nil); err != nil {
		return fmt.Errorf("copying texture: %w", err)
	}
	w.renderer.Present()
	return nil
}

func (w *playerWindow) Close() {
	w.tex.Destroy()
	w.renderer.Destroy()
	w.window.Destroy()
}
