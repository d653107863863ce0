package script

import (
	"ticforge/internal/ram"
	"ticforge/internal/raster"
	"ticforge/internal/vm"
)

// buttonNames lets script code write btn(0, "up") instead of memorizing
// the Button enum's integer order.
var buttonNames = map[string]ram.Button{
	"up": ram.ButtonUp, "down": ram.ButtonDown, "left": ram.ButtonLeft, "right": ram.ButtonRight,
	"a": ram.ButtonA, "b": ram.ButtonB, "x": ram.ButtonX, "y": ram.ButtonY,
}

func toButton(v Value) ram.Button {
	if s, ok := v.(string); ok {
		if b, ok := buttonNames[s]; ok {
			return b
		}
	}
	return ram.Button(uint8(toNumber(v)) & 0x07)
}

func arg(args []Value, i int) Value {
	if i < len(args) {
		return args[i]
	}
	return nil
}

func toU8(v Value) uint8   { return uint8(int64(toNumber(v))) }
func toInt(v Value) int    { return int(toNumber(v)) }
func toI8(v Value) int8    { return int8(int64(toNumber(v))) }
func toBool(v Value) bool  { return truthy(v) }

// newBuiltins returns the table of host functions bound to c, grouped the
// same way spec.md §6.2 groups the API: Drawing, Input, Sound, Memory,
// Meta. This is the script language's whole surface onto internal/vm —
// everything a TIC/SCN/OVR/BDR entry point can do.
func newBuiltins(c *vm.Console) map[string]BuiltinFunc {
	b := map[string]BuiltinFunc{}

	// Drawing
	b["cls"] = func(a []Value) (Value, error) {
		c.Cls(toU8(arg(a, 0)))
		return nil, nil
	}
	b["pix"] = func(a []Value) (Value, error) {
		x, y := toInt(arg(a, 0)), toInt(arg(a, 1))
		if len(a) >= 3 {
			c.Pix(x, y, toU8(a[2]))
			return nil, nil
		}
		return float64(c.PixGet(x, y)), nil
	}
	b["line"] = func(a []Value) (Value, error) {
		c.Line(toInt(arg(a, 0)), toInt(arg(a, 1)), toInt(arg(a, 2)), toInt(arg(a, 3)), toU8(arg(a, 4)))
		return nil, nil
	}
	b["rect"] = func(a []Value) (Value, error) {
		c.Rect(toInt(arg(a, 0)), toInt(arg(a, 1)), toInt(arg(a, 2)), toInt(arg(a, 3)), toU8(arg(a, 4)))
		return nil, nil
	}
	b["rectb"] = func(a []Value) (Value, error) {
		c.Rectb(toInt(arg(a, 0)), toInt(arg(a, 1)), toInt(arg(a, 2)), toInt(arg(a, 3)), toU8(arg(a, 4)))
		return nil, nil
	}
	b["circ"] = func(a []Value) (Value, error) {
		c.Circ(toInt(arg(a, 0)), toInt(arg(a, 1)), toInt(arg(a, 2)), toU8(arg(a, 3)))
		return nil, nil
	}
	b["circb"] = func(a []Value) (Value, error) {
		c.Circb(toInt(arg(a, 0)), toInt(arg(a, 1)), toInt(arg(a, 2)), toU8(arg(a, 3)))
		return nil, nil
	}
	b["elli"] = func(a []Value) (Value, error) {
		c.Elli(toInt(arg(a, 0)), toInt(arg(a, 1)), toInt(arg(a, 2)), toInt(arg(a, 3)), toU8(arg(a, 4)))
		return nil, nil
	}
	b["ellib"] = func(a []Value) (Value, error) {
		c.Ellib(toInt(arg(a, 0)), toInt(arg(a, 1)), toInt(arg(a, 2)), toInt(arg(a, 3)), toU8(arg(a, 4)))
		return nil, nil
	}
	b["tri"] = func(a []Value) (Value, error) {
		c.Tri(toInt(arg(a, 0)), toInt(arg(a, 1)), toInt(arg(a, 2)), toInt(arg(a, 3)), toInt(arg(a, 4)), toInt(arg(a, 5)), toU8(arg(a, 6)))
		return nil, nil
	}
	b["trib"] = func(a []Value) (Value, error) {
		c.Trib(toInt(arg(a, 0)), toInt(arg(a, 1)), toInt(arg(a, 2)), toInt(arg(a, 3)), toInt(arg(a, 4)), toInt(arg(a, 5)), toU8(arg(a, 6)))
		return nil, nil
	}
	b["spr"] = func(a []Value) (Value, error) {
		opts := raster.SprOpts{Scale: 1}
		if len(a) > 3 {
			opts.ChromaKeys = []uint8{toU8(a[3])}
		}
		if len(a) > 4 {
			opts.Scale = toInt(a[4])
		}
		if len(a) > 5 {
			opts.FlipH = toBool(a[5])
		}
		if len(a) > 6 {
			opts.FlipV = toBool(a[6])
		}
		if len(a) > 7 {
			opts.Rotate = toInt(a[7])
		}
		c.Spr(toInt(arg(a, 0)), toInt(arg(a, 1)), toInt(arg(a, 2)), opts)
		return nil, nil
	}
	b["map"] = func(a []Value) (Value, error) {
		mx, my, w, h := toInt(arg(a, 0)), toInt(arg(a, 1)), toInt(arg(a, 2)), toInt(arg(a, 3))
		x, y := toInt(arg(a, 4)), toInt(arg(a, 5))
		var chroma []uint8
		if len(a) > 6 {
			chroma = []uint8{toU8(a[6])}
		}
		c.Map(mx, my, w, h, x, y, nil, chroma)
		return nil, nil
	}
	b["mget"] = func(a []Value) (Value, error) {
		return float64(c.Mget(toInt(arg(a, 0)), toInt(arg(a, 1)))), nil
	}
	b["mset"] = func(a []Value) (Value, error) {
		c.Mset(toInt(arg(a, 0)), toInt(arg(a, 1)), toU8(arg(a, 2)))
		return nil, nil
	}
	b["clip"] = func(a []Value) (Value, error) {
		if len(a) == 0 {
			c.ResetClip()
			return nil, nil
		}
		c.Clip(toInt(arg(a, 0)), toInt(arg(a, 1)), toInt(arg(a, 2)), toInt(arg(a, 3)))
		return nil, nil
	}
	b["print"] = func(a []Value) (Value, error) {
		text := toString(arg(a, 0))
		x, y := toInt(arg(a, 1)), toInt(arg(a, 2))
		color := toU8(arg(a, 3))
		opts := raster.PrintOpts{Scale: 1}
		if len(a) > 4 {
			opts.Fixed = toBool(a[4])
		}
		if len(a) > 5 {
			opts.Scale = toInt(a[5])
		}
		return float64(c.Print(text, x, y, color, opts)), nil
	}
	b["fget"] = func(a []Value) (Value, error) {
		return c.Fget(toInt(arg(a, 0)), toInt(arg(a, 1))), nil
	}
	b["fset"] = func(a []Value) (Value, error) {
		c.Fset(toInt(arg(a, 0)), toInt(arg(a, 1)), toBool(arg(a, 2)))
		return nil, nil
	}

	// Input
	b["btn"] = func(a []Value) (Value, error) {
		return c.Btn(toInt(arg(a, 0)), toButton(arg(a, 1))), nil
	}
	b["btnp"] = func(a []Value) (Value, error) {
		hold, period := -1, -1
		if len(a) > 2 {
			hold = toInt(a[2])
		}
		if len(a) > 3 {
			period = toInt(a[3])
		}
		return c.Btnp(toInt(arg(a, 0)), toButton(arg(a, 1)), hold, period), nil
	}
	b["key"] = func(a []Value) (Value, error) {
		return c.Key(toU8(arg(a, 0))), nil
	}
	b["keyp"] = func(a []Value) (Value, error) {
		hold, period := -1, -1
		if len(a) > 1 {
			hold = toInt(a[1])
		}
		if len(a) > 2 {
			period = toInt(a[2])
		}
		return c.Keyp(toU8(arg(a, 0)), hold, period), nil
	}
	b["mousex"] = func(a []Value) (Value, error) { return float64(c.Mouse().X), nil }
	b["mousey"] = func(a []Value) (Value, error) { return float64(c.Mouse().Y), nil }
	b["mousebtn"] = func(a []Value) (Value, error) {
		idx := uint(toInt(arg(a, 0)))
		m := c.Mouse()
		return (m.Buttons>>idx)&1 != 0, nil
	}

	// Sound
	b["sfx"] = func(a []Value) (Value, error) {
		c.Sfx(toInt(arg(a, 0)), toInt(arg(a, 1)), toInt(arg(a, 2)), toInt(arg(a, 3)), toInt(arg(a, 4)), toU8(arg(a, 5)), toI8(arg(a, 6)))
		return nil, nil
	}
	b["sfxstop"] = func(a []Value) (Value, error) {
		c.SfxStop(toInt(arg(a, 0)))
		return nil, nil
	}
	b["music"] = func(a []Value) (Value, error) {
		c.Music(toInt(arg(a, 0)), toInt(arg(a, 1)), toInt(arg(a, 2)), toBool(arg(a, 3)))
		return nil, nil
	}
	b["musicframe"] = func(a []Value) (Value, error) {
		c.MusicFrame(toInt(arg(a, 0)), toInt(arg(a, 1)), toInt(arg(a, 2)), toBool(arg(a, 3)))
		return nil, nil
	}
	b["musicstop"] = func(a []Value) (Value, error) {
		c.MusicStop()
		return nil, nil
	}

	// Memory
	b["peek"] = func(a []Value) (Value, error) { return float64(c.Peek(toInt(arg(a, 0)))), nil }
	b["poke"] = func(a []Value) (Value, error) {
		c.Poke(toInt(arg(a, 0)), toU8(arg(a, 1)))
		return nil, nil
	}
	b["peek4"] = func(a []Value) (Value, error) { return float64(c.Peek4(toInt(arg(a, 0)))), nil }
	b["poke4"] = func(a []Value) (Value, error) {
		c.Poke4(toInt(arg(a, 0)), toU8(arg(a, 1)))
		return nil, nil
	}
	b["peek1"] = func(a []Value) (Value, error) { return float64(c.Peek1(toInt(arg(a, 0)))), nil }
	b["poke1"] = func(a []Value) (Value, error) {
		c.Poke1(toInt(arg(a, 0)), toU8(arg(a, 1)))
		return nil, nil
	}
	b["peek2"] = func(a []Value) (Value, error) { return float64(c.Peek2(toInt(arg(a, 0)))), nil }
	b["poke2"] = func(a []Value) (Value, error) {
		c.Poke2(toInt(arg(a, 0)), toU8(arg(a, 1)))
		return nil, nil
	}
	b["memcpy"] = func(a []Value) (Value, error) {
		c.Memcpy(toInt(arg(a, 0)), toInt(arg(a, 1)), toInt(arg(a, 2)))
		return nil, nil
	}
	b["memset"] = func(a []Value) (Value, error) {
		c.Memset(toInt(arg(a, 0)), toInt(arg(a, 1)), toU8(arg(a, 2)))
		return nil, nil
	}
	b["pmem"] = func(a []Value) (Value, error) {
		idx := toInt(arg(a, 0))
		if len(a) > 1 {
			return float64(c.SetPmem(idx, int32(toNumber(a[1])))), nil
		}
		return float64(c.Pmem(idx)), nil
	}

	// Meta
	b["time"] = func(a []Value) (Value, error) { return c.Time(), nil }
	b["exit"] = func(a []Value) (Value, error) {
		c.Exit()
		return nil, nil
	}
	b["trace"] = func(a []Value) (Value, error) {
		c.Trace(toString(arg(a, 0)))
		return nil, nil
	}
	b["vbank"] = func(a []Value) (Value, error) {
		return float64(c.Vbank(toInt(arg(a, 0)))), nil
	}

	return b
}
