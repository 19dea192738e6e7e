package model

import (
	"bytes"
	"io"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
)

// ClearScreen moves the cursor home and erases the terminal
const ClearScreen = "\033[H\033[2J"

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct {
	out    io.Writer
	glyphs rules.Glyphs
	pool   *FramePool
}

// NewTerminalRenderer creates a renderer writing to out. A nil pool allocates a buffer per frame.
func NewTerminalRenderer(out io.Writer, glyphs rules.Glyphs, pool *FramePool) *TerminalRenderer {
	return &TerminalRenderer{out: out, glyphs: glyphs, pool: pool}
}

// Frame renders an optional header line and the board into a buffer without writing it
func (r *TerminalRenderer) Frame(header string, b *Board) *bytes.Buffer {
	size := len(header) + 1 + b.RenderSize(r.glyphs)

	var buf *bytes.Buffer
	if r.pool != nil {
		buf = r.pool.Get(size)
	} else {
		buf = bytes.NewBuffer(make([]byte, 0, size))
	}
	if header != "" {
		buf.WriteString(header)
		buf.WriteByte('\n')
	}
	b.renderTo(buf, r.glyphs)
	return buf
}

// Display writes a rendered frame to the terminal and releases it
func (r *TerminalRenderer) Display(frame *bytes.Buffer) error {
	defer FrameToPool(frame, r.pool)

	if _, err := frame.WriteTo(r.out); err != nil {
		return errors.Wrap(err, "[Display] failed to write frame")
	}
	return nil
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	if _, err := io.WriteString(r.out, ClearScreen); err != nil {
		return errors.Wrap(err, "[Clear] failed to clear terminal")
	}
	return nil
}
