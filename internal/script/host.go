package script

import (
	"fmt"
	"strings"

	"ticforge/internal/vm"
)

// Host adapts an Interp to vm.ScriptHost: spec.md §6.1's ScriptConfig
// record, naming the language and wiring its TIC/SCN/OVR/BDR entry
// points to Console.Composite's per-frame callbacks.
type Host struct {
	console *vm.Console
	interp  *Interp
}

// NewHost returns a Host with no code loaded; Init compiles and runs it.
func NewHost() *Host {
	return &Host{}
}

var _ vm.ScriptHost = (*Host)(nil)

func (h *Host) Name() string           { return "pxs" }
func (h *Host) FileExtension() string  { return ".pxs" }
func (h *Host) ProjectComment() string { return "-- title:   game\n-- author:  you\n-- desc:    a new cart\n" }

// Init compiles code against c and, if it defines BOOT(), calls BOOT once
// before the first tick. Only function declarations are allowed at top
// level, so BOOT is the only code that runs at load time.
func (h *Host) Init(c *vm.Console, code string) error {
	h.console = c
	h.interp = NewInterp(newBuiltins(c))
	if err := h.interp.Load(code); err != nil {
		return err
	}
	if h.interp.HasFunction("BOOT") {
		if _, err := h.interp.Call("BOOT"); err != nil {
			return err
		}
	}
	return nil
}

func (h *Host) Close() {
	h.interp = nil
}

// Tick calls the cart's TIC() entry point, the per-frame game-logic
// function spec.md §6.1 names.
func (h *Host) Tick() {
	if h.interp == nil || !h.interp.HasFunction("TIC") {
		return
	}
	if _, err := h.interp.Call("TIC"); err != nil {
		h.console.ReportError(err.Error(), 8)
	}
}

// Scanline calls SCN(row) if the cart defines it.
func (h *Host) Scanline(row int) {
	if h.interp == nil || !h.interp.HasFunction("SCN") {
		return
	}
	if _, err := h.interp.Call("SCN", float64(row)); err != nil {
		h.console.ReportError(err.Error(), 8)
	}
}

// Overline calls OVR() if the cart defines it.
func (h *Host) Overline() {
	if h.interp == nil || !h.interp.HasFunction("OVR") {
		return
	}
	if _, err := h.interp.Call("OVR"); err != nil {
		h.console.ReportError(err.Error(), 8)
	}
}

// Border calls BDR(row) if the cart defines it, returning its result as
// the row's border color; otherwise it leaves the border register
// untouched by returning its current value.
func (h *Host) Border(row int) uint8 {
	if h.interp == nil || !h.interp.HasFunction("BDR") {
		return h.console.Raster.BorderColor()
	}
	v, err := h.interp.Call("BDR", float64(row))
	if err != nil {
		h.console.ReportError(err.Error(), 8)
		return h.console.Raster.BorderColor()
	}
	return toU8(v)
}

// Eval evaluates one expression against the live interpreter state, for
// a REPL panel, and returns its value as a string ("" for nil): "2+2"
// gives "4", and a call such as trace("hi") runs for its effect. The
// fragment is parsed as the operand of a return, so statements such as
// assignments, local, if or loops are not accepted.
func (h *Host) Eval(code string) (string, error) {
	if h.interp == nil {
		return "", fmt.Errorf("no cart loaded")
	}
	p := NewParser("function __eval__()\nreturn " + code + "\nend")
	prog, err := p.ParseProgram()
	if err != nil {
		return "", err
	}
	fn := prog.Functions[0]
	local := newEnv(h.interp.globals)
	val, returned, err := h.interp.execBlock(fn.Body, local)
	if err != nil {
		return "", err
	}
	if !returned || val == nil {
		return "", nil
	}
	return toString(val), nil
}

// Outline returns the byte range of the name of every top-level function
// declared in code, for an editor's function-jump list.
func (h *Host) Outline(code string) []vm.OutlineRange {
	prog, err := NewParser(code).ParseProgram()
	if err != nil {
		return nil
	}
	var out []vm.OutlineRange
	lines := strings.Split(code, "\n")
	lineOffset := make([]int, len(lines)+1)
	for i, l := range lines {
		lineOffset[i+1] = lineOffset[i] + len(l) + 1
	}
	for _, fn := range prog.Functions {
		offset := 0
		if fn.Position.Line-1 < len(lineOffset) {
			offset = lineOffset[fn.Position.Line-1] + fn.Position.Col - 1
		}
		// fn.Position is the 'function' keyword; the name follows it.
		if start := offset + len("function"); start <= len(code) {
			if i := strings.Index(code[start:], fn.Name); i >= 0 {
				offset = start + i
			}
		}
		out = append(out, vm.OutlineRange{Name: fn.Name, Offset: offset, Length: len(fn.Name)})
	}
	return out
}

func (h *Host) Keywords() []string {
	return []string{
		"function", "end", "if", "then", "elseif", "else", "while", "for",
		"do", "return", "local", "true", "false", "and", "or", "not",
	}
}

func (h *Host) CommentDelimiters() (line, blockStart, blockEnd string) {
	return "--", "", ""
}

func (h *Host) StringDelimiters() []string {
	return []string{"\""}
}
