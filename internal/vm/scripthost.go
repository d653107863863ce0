package vm

// OutlineRange names one top-level definition's byte range within a
// cart's code, for get_outline's editor-facing query (spec.md §6.1).
type OutlineRange struct {
	Name   string
	Offset int
	Length int
}

// ScriptHost implements spec.md §6.1's ScriptConfig record: the language
// binding that compiles and drives a cartridge's code against a Console.
// Callback.scanline/overline/border are invoked by Console.Composite once
// per frame; a host with no such callbacks defined in the loaded code
// implements them as no-ops.
type ScriptHost interface {
	// Name, FileExtension and ProjectComment are metadata used for
	// file-type detection and for stamping a freshly created cart's
	// comment header.
	Name() string
	FileExtension() string
	ProjectComment() string

	// Init compiles and evaluates code, installing the entry points
	// Tick/Scanline/Overline/Border/Eval will call into.
	Init(c *Console, code string) error
	// Close tears down any interpreter state.
	Close()
	// Tick invokes the user's TIC() entry point for this frame.
	Tick()

	// Scanline is invoked once per output row before that row is
	// composited. Overline runs once after the full frame. Border
	// returns the border color for the given row.
	Scanline(row int)
	Overline()
	Border(row int) uint8

	// Eval runs a REPL fragment against the live interpreter state.
	Eval(code string) (string, error)
	// Outline returns the top-level definitions in code, for an editor.
	Outline(code string) []OutlineRange

	// Keywords and the delimiter accessors below support syntax
	// highlighting in an editor; the core never calls them itself.
	Keywords() []string
	CommentDelimiters() (line, blockStart, blockEnd string)
	StringDelimiters() []string
}
