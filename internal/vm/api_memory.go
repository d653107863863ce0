package vm

// The Memory group (spec.md §6.2) exposes RAM's flat address space plus
// persistent memory and bank sync.

func (c *Console) Peek(addr int) uint8         { return c.RAM.Peek(addr) }
func (c *Console) Poke(addr int, value uint8)  { c.RAM.Poke(addr, value) }
func (c *Console) Peek4(nibbleIdx int) uint8   { return c.RAM.PeekNibble(nibbleIdx) }
func (c *Console) Poke4(nibbleIdx int, value uint8) { c.RAM.PokeNibble(nibbleIdx, value) }

// Peek1/Poke1 read/write a single bit; Peek2/Poke2 a 2-bit quantity.
// Both are expressed in terms of Peek4's nibble addressing, matching the
// original engine's peek1/peek2/peek4 family all being views over the
// same byte.
func (c *Console) Peek1(bitIdx int) uint8 {
	byteVal := c.RAM.Peek(bitIdx >> 3)
	return (byteVal >> uint(bitIdx&7)) & 1
}

func (c *Console) Poke1(bitIdx int, value uint8) {
	addr := bitIdx >> 3
	shift := uint(bitIdx & 7)
	b := c.RAM.Peek(addr)
	b = (b &^ (1 << shift)) | ((value & 1) << shift)
	c.RAM.Poke(addr, b)
}

func (c *Console) Peek2(idx int) uint8 {
	addr := idx >> 2
	shift := uint(idx&3) * 2
	return (c.RAM.Peek(addr) >> shift) & 0x3
}

func (c *Console) Poke2(idx int, value uint8) {
	addr := idx >> 2
	shift := uint(idx&3) * 2
	b := c.RAM.Peek(addr)
	b = (b &^ (0x3 << shift)) | ((value & 0x3) << shift)
	c.RAM.Poke(addr, b)
}

func (c *Console) Memcpy(dst, src, n int)        { c.RAM.Memcpy(dst, src, n) }
func (c *Console) Memset(addr, n int, value uint8) { c.RAM.Memset(addr, n, value) }

func (c *Console) Pmem(idx int) int32               { return c.RAM.Pmem(idx) }
func (c *Console) SetPmem(idx int, value int32) int32 { return c.RAM.SetPmem(idx, value) }
