package ram

// Pmem reads persistent memory slot idx (0..PersistentSize-1). Persistent
// memory survives Reset but not process restart within this package —
// callers that want disk persistence save/restore the slice themselves
// (see internal/vm's save-id handling).
func (r *RAM) Pmem(idx int) int32 {
	if idx < 0 || idx >= PersistentSize {
		return 0
	}
	return r.Persistent[idx]
}

// SetPmem writes persistent memory slot idx and returns the previous
// value, matching the engine's pmem(index, value) API which both reads
// and writes in one call.
func (r *RAM) SetPmem(idx int, value int32) int32 {
	if idx < 0 || idx >= PersistentSize {
		return 0
	}
	old := r.Persistent[idx]
	r.Persistent[idx] = value
	return old
}

// ResetVolatile clears every region except Persistent, matching the
// engine's reset(): persistent memory is the one region a cartridge
// reload or reset must not touch (spec.md property 9).
func (r *RAM) ResetVolatile() {
	saved := r.Persistent
	*r = RAM{}
	r.Persistent = saved
}
