package term

import (
	"sync"

	"github.com/atotto/clipboard"

	"github.com/go-drift/pure/pkg/core"
)

// SystemClipboard is a core.Clipboard backed by the operating system
// clipboard. The primary selection, and the standard clipboard on systems
// without clipboard support, fall back to a process-local buffer.
type SystemClipboard struct {
	mu      sync.Mutex
	primary string
	local   string
	// Disabled skips the system clipboard entirely.
	Disabled bool
}

func (c *SystemClipboard) Read(kind core.ClipboardKind) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if kind == core.ClipboardPrimary {
		return c.primary, c.primary != ""
	}
	if !c.Disabled {
		if content, err := clipboard.ReadAll(); err == nil {
			return content, true
		}
	}
	return c.local, c.local != ""
}

func (c *SystemClipboard) Write(kind core.ClipboardKind, content string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if kind == core.ClipboardPrimary {
		c.primary = content
		return
	}
	c.local = content
	if !c.Disabled {
		_ = clipboard.WriteAll(content)
	}
}

var _ core.Clipboard = (*SystemClipboard)(nil)
