// Package wire provides the low-level primitives of the DNS wire format:
// a bounded big-endian cursor for decoding, a length-capped writer for
// encoding, and the domain name codec with compression pointer support.
package wire

import "encoding/binary"

// Cursor is a bounded reader over an immutable byte slice. All reads are
// big-endian and fail with ErrTruncated rather than going out of bounds.
//
// A Cursor created with Sub shares the underlying message bytes with its
// parent, so name decoding inside a record body can still resolve
// compression pointers against earlier parts of the message.
type Cursor struct {
	data  []byte
	pos   int
	limit int
}

// NewCursor returns a cursor over the whole of data.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data, limit: len(data)}
}

// Pos returns the absolute offset of the next read.
func (c *Cursor) Pos() int {
	return c.pos
}

// Remaining returns the number of bytes left before the cursor's limit.
func (c *Cursor) Remaining() int {
	return c.limit - c.pos
}

// Sub returns a cursor over the next n bytes, sharing the underlying
// message buffer, and advances the parent past them. The sub-cursor's
// reads are confined to those n bytes.
func (c *Cursor) Sub(n int) (*Cursor, error) {
	if n < 0 || c.pos+n > c.limit {
		return nil, ErrTruncated
	}
	sub := &Cursor{data: c.data, pos: c.pos, limit: c.pos + n}
	c.pos += n
	return sub, nil
}

// ReadU8 reads a single byte.
func (c *Cursor) ReadU8() (uint8, error) {
	if c.pos+1 > c.limit {
		return 0, ErrTruncated
	}
	b := c.data[c.pos]
	c.pos++
	return b, nil
}

// ReadU16 reads a big-endian 16-bit value.
func (c *Cursor) ReadU16() (uint16, error) {
	if c.pos+2 > c.limit {
		return 0, ErrTruncated
	}
	v := binary.BigEndian.Uint16(c.data[c.pos:])
	c.pos += 2
	return v, nil
}

// ReadU32 reads a big-endian 32-bit value.
func (c *Cursor) ReadU32() (uint32, error) {
	if c.pos+4 > c.limit {
		return 0, ErrTruncated
	}
	v := binary.BigEndian.Uint32(c.data[c.pos:])
	c.pos += 4
	return v, nil
}

// ReadU48 reads a big-endian 48-bit value, as used by TSIG timestamps.
func (c *Cursor) ReadU48() (uint64, error) {
	if c.pos+6 > c.limit {
		return 0, ErrTruncated
	}
	hi := uint64(binary.BigEndian.Uint16(c.data[c.pos:]))
	lo := uint64(binary.BigEndian.Uint32(c.data[c.pos+2:]))
	c.pos += 6
	return hi<<32 | lo, nil
}

// ReadBytes reads exactly n bytes into a fresh slice. The copy keeps decoded
// messages independent of the packet buffer they came from.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	if n < 0 || c.pos+n > c.limit {
		return nil, ErrTruncated
	}
	out := make([]byte, n)
	copy(out, c.data[c.pos:c.pos+n])
	c.pos += n
	return out, nil
}

// ReadRemaining reads every byte left before the limit.
func (c *Cursor) ReadRemaining() ([]byte, error) {
	return c.ReadBytes(c.Remaining())
}

// peek returns the byte at an absolute offset in the underlying message,
// ignoring the cursor's limit. Used by the name decoder to follow
// compression pointers.
func (c *Cursor) peek(offset int) (uint8, bool) {
	if offset < 0 || offset >= len(c.data) {
		return 0, false
	}
	return c.data[offset], true
}
