package decode

import (
	"fmt"

	"proofcheck/internal/pattern"
)

// Cursor walks a []int instruction stream. Buffers begin with a one-byte
// size prefix the decoder skips, and terminate on NO_OP or end-of-buffer —
// see spec.md §4.3 and §6.
type Cursor struct {
	buf []int
	pos int
}

// NewCursor builds a Cursor over buf and skips its leading size prefix.
func NewCursor(buf []int) *Cursor {
	c := &Cursor{buf: buf}
	if len(buf) > 0 {
		c.pos = 1
	}
	return c
}

// Done reports whether the cursor has reached the end of the buffer.
func (c *Cursor) Done() bool {
	return c.pos >= len(c.buf)
}

// Halt forces Done to report true, used by NO_OP to end a phase regardless
// of remaining bytes.
func (c *Cursor) Halt() {
	c.pos = len(c.buf)
}

// ReadInt reads one raw integer, advancing the cursor.
func (c *Cursor) ReadInt() (int, error) {
	if c.pos >= len(c.buf) {
		return 0, fmt.Errorf("unexpected end of instruction stream")
	}
	v := c.buf[c.pos]
	c.pos++
	return v, nil
}

// ReadOpcode reads and decodes the next opcode.
func (c *Cursor) ReadOpcode() (Opcode, error) {
	v, err := c.ReadInt()
	if err != nil {
		return 0, err
	}
	return Decode(v)
}

// ReadID reads a single Id operand.
func (c *Cursor) ReadID() (pattern.Id, error) {
	v, err := c.ReadInt()
	if err != nil {
		return 0, fmt.Errorf("expected id operand: %w", err)
	}
	return pattern.Id(v), nil
}

// ReadIDSet reads a length-prefixed id-list: <len> <id>^len.
func (c *Cursor) ReadIDSet() (pattern.IdSet, error) {
	n, err := c.ReadInt()
	if err != nil {
		return pattern.IdSet{}, fmt.Errorf("expected id-list size prefix: %w", err)
	}
	if n < 0 {
		return pattern.IdSet{}, fmt.Errorf("negative id-list size prefix: %d", n)
	}
	ids := make([]pattern.Id, 0, n)
	for i := 0; i < n; i++ {
		id, err := c.ReadID()
		if err != nil {
			return pattern.IdSet{}, fmt.Errorf("truncated id-list: %w", err)
		}
		ids = append(ids, id)
	}
	return pattern.NewIdSet(ids...), nil
}
