package form

import (
	"encoding/base64"
	"fmt"
	"io"
	"sync"
)

// MemoryClipboard keeps the last copied text in memory.
type MemoryClipboard struct {
	mu   sync.Mutex
	text string
}

func (c *MemoryClipboard) SetText(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.text = text
	return nil
}

func (c *MemoryClipboard) Text() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text
}

// TerminalClipboard sets the system clipboard through the OSC 52 escape
// sequence, which most terminal emulators (and tmux with set-clipboard on)
// forward to the host clipboard.
type TerminalClipboard struct {
	W io.Writer
}

func (c TerminalClipboard) SetText(text string) error {
	enc := base64.StdEncoding.EncodeToString([]byte(text))
	if _, err := fmt.Fprintf(c.W, "\x1b]52;c;%s\x07", enc); err != nil {
		return fmt.Errorf("writing clipboard sequence: %w", err)
	}
	return nil
}
