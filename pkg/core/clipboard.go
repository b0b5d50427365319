package core

// ClipboardKind selects the standard clipboard or the primary selection.
type ClipboardKind int

const (
	ClipboardStandard ClipboardKind = iota
	ClipboardPrimary
)

// Clipboard is the clipboard capability supplied by the host.
type Clipboard interface {
	Read(kind ClipboardKind) (string, bool)
	Write(kind ClipboardKind, content string)
}

// NullClipboard is a clipboard that is always empty and discards writes.
type NullClipboard struct{}

func (NullClipboard) Read(ClipboardKind) (string, bool) { return "", false }

func (NullClipboard) Write(ClipboardKind, string) {}

// MemoryClipboard keeps clipboard contents in memory.
type MemoryClipboard struct {
	contents map[ClipboardKind]string
}

// Read returns the stored content for kind.
func (c *MemoryClipboard) Read(kind ClipboardKind) (string, bool) {
	s, ok := c.contents[kind]
	return s, ok
}

// Write stores content for kind.
func (c *MemoryClipboard) Write(kind ClipboardKind, content string) {
	if c.contents == nil {
		c.contents = make(map[ClipboardKind]string)
	}
	c.contents[kind] = content
}
