package vm

import (
	"crypto/md5"
	"fmt"
	"strings"

	"ticforge/internal/ram"
)

// deriveSaveID computes spec.md §6.4's save-id for a cart's code: an
// explicit `saveid:` metadata comment when present, else an MD5 hash of
// the code, matching original_source/src/tic.c's updateSaveid/
// readMetatag fallback ("Use `saveid:` with a personalized string in the
// header metadata to override the default MD5 calculation").
func deriveSaveID(code string) string {
	if id, ok := readMetatag(code, "saveid"); ok && id != "" {
		return id
	}
	sum := md5.Sum([]byte(code))
	return fmt.Sprintf("%x", sum)
}

// readMetatag scans code for a line comment of the form "key: value",
// matching the original engine's tolerance for either Lua (--) or C-style
// (//) comment prefixes ahead of the tag.
func readMetatag(code, key string) (string, bool) {
	prefix := key + ":"
	for _, line := range strings.Split(code, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "--")
		line = strings.TrimPrefix(line, "//")
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(line, prefix)), true
		}
	}
	return "", false
}

// SaveID returns the key a host should use to store/retrieve this
// console's persistent memory blob.
func (c *Console) SaveID() string { return c.saveID }

// ExportPersistent returns a copy of the persistent memory region, for a
// host to write to external storage keyed by SaveID.
func (c *Console) ExportPersistent() [ram.PersistentSize]int32 {
	return c.RAM.Persistent
}

// ImportPersistent installs a previously saved persistent memory blob.
// Call once after construction, before the first Tick.
func (c *Console) ImportPersistent(data [ram.PersistentSize]int32) {
	c.RAM.Persistent = data
}
