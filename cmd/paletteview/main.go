// Command paletteview is a read-only fyne inspector for a cartridge's
// palette and tile sheet: not the teacher's Studio editor, just the
// app/window/canvas.Image scaffolding from internal/ui/fyne_ui.go
// trimmed down to a single static viewer with a bank selector.
package main

import (
	"flag"
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"ticforge/internal/cart"
	"ticforge/internal/ram"
)

func main() {
	cartPath := flag.String("cart", "", "path to a cartridge file")
	flag.Parse()

	if *cartPath == "" {
		fmt.Println("usage: paletteview -cart <path-to-cart>")
		os.Exit(1)
	}

	data, err := os.ReadFile(*cartPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading cartridge: %v\n", err)
		os.Exit(1)
	}
	c, err := cart.Load(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error parsing cartridge: %v\n", err)
		os.Exit(1)
	}

	fyneApp := app.NewWithID("forge.ticforge.paletteview")
	window := fyneApp.NewWindow(fmt.Sprintf("paletteview — %s", *cartPath))

	v := newViewer(c)
	window.SetContent(v.content())
	window.Resize(fyne.NewSize(600, 420))
	window.ShowAndRun()
}

type viewer struct {
	cart *cart.Cartridge
	bank int

	paletteImg *canvas.Image
	tilesImg   *canvas.Image
	bankLabel  *widget.Label
}

func newViewer(c *cart.Cartridge) *viewer {
	return &viewer{cart: c}
}

func (v *viewer) content() fyne.CanvasObject {
	v.paletteImg = canvas.NewImageFromImage(paletteImage(&v.cart.Banks[v.bank]))
	v.paletteImg.FillMode = canvas.ImageFillOriginal

	v.tilesImg = canvas.NewImageFromImage(tileSheetImage(&v.cart.Banks[v.bank], false))
	v.tilesImg.FillMode = canvas.ImageFillOriginal

	v.bankLabel = widget.NewLabel(v.bankText())

	prev := widget.NewButton("< bank", func() { v.setBank(v.bank - 1) })
	next := widget.NewButton("bank >", func() { v.setBank(v.bank + 1) })

	spritesToggle := widget.NewCheck("show sprite bank", func(on bool) {
		v.tilesImg.Image = tileSheetImage(&v.cart.Banks[v.bank], on)
		v.tilesImg.Refresh()
	})

	controls := container.NewHBox(prev, v.bankLabel, next, spritesToggle)

	return container.NewBorder(
		container.NewVBox(controls, widget.NewLabel("palette"), v.paletteImg),
		nil, nil, nil,
		container.NewVScroll(v.tilesImg),
	)
}

func (v *viewer) bankText() string {
	return fmt.Sprintf("%d / %d", v.bank, ram.Banks-1)
}

func (v *viewer) setBank(n int) {
	if n < 0 || n >= ram.Banks {
		return
	}
	v.bank = n
	v.bankLabel.SetText(v.bankText())
	v.paletteImg.Image = paletteImage(&v.cart.Banks[v.bank])
	v.paletteImg.Refresh()
	v.tilesImg.Image = tileSheetImage(&v.cart.Banks[v.bank], false)
	v.tilesImg.Refresh()
}
