package vm

import "ticforge/internal/ram"

// The Input group (spec.md §6.2) reads the latched state TickStart
// produced this tick; none of it mutates RAM.

func (c *Console) Btn(pad int, b ram.Button) bool { return c.RAM.Input.Btn(pad, b) }

func (c *Console) Btnp(pad int, b ram.Button, hold, period int) bool {
	return c.RAM.Input.Btnp(pad, b, hold, period)
}

func (c *Console) Key(code uint8) bool { return c.RAM.Input.Key(code) }

func (c *Console) Keyp(code uint8, hold, period int) bool {
	return c.RAM.Input.Keyp(code, hold, period)
}

func (c *Console) Mouse() ram.Mouse { return c.RAM.Input.Mouse }

// SetButton/SetKeyboard/SetMouse are the host-side half of the input
// group: a player frontend calls these before Tick to stage this frame's
// raw input, which TickStart then latches.
func (c *Console) SetButton(pad int, b ram.Button, pressed bool) {
	c.RAM.Input.SetButton(pad, b, pressed)
}

func (c *Console) SetKeyboard(codes [4]uint8) { c.RAM.Input.Keyboard = codes }
func (c *Console) SetMouse(m ram.Mouse)       { c.RAM.Input.Mouse = m }
