package wire

import (
	"bytes"
	"errors"
	"testing"
)

func TestCursorReads(t *testing.T) {
	c := NewCursor([]byte{
		0x12,
		0x34, 0x56,
		0x00, 0x00, 0x00, 0x2a,
		0x00, 0x01, 0x00, 0x00, 0x00, 0x02,
		0xaa, 0xbb,
	})

	u8, err := c.ReadU8()
	if err != nil || u8 != 0x12 {
		t.Errorf("ReadU8() = %v, %v; want 0x12, nil", u8, err)
	}

	u16, err := c.ReadU16()
	if err != nil || u16 != 0x3456 {
		t.Errorf("ReadU16() = %v, %v; want 0x3456, nil", u16, err)
	}

	u32, err := c.ReadU32()
	if err != nil || u32 != 42 {
		t.Errorf("ReadU32() = %v, %v; want 42, nil", u32, err)
	}

	u48, err := c.ReadU48()
	if err != nil || u48 != 0x000100000002 {
		t.Errorf("ReadU48() = %v, %v; want 0x000100000002, nil", u48, err)
	}

	rest, err := c.ReadRemaining()
	if err != nil || !bytes.Equal(rest, []byte{0xaa, 0xbb}) {
		t.Errorf("ReadRemaining() = %v, %v; want [aa bb], nil", rest, err)
	}

	if c.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", c.Remaining())
	}
}

func TestCursorTruncation(t *testing.T) {
	tests := []struct {
		name string
		read func(c *Cursor) error
		data []byte
	}{
		{"u8 on empty", func(c *Cursor) error { _, err := c.ReadU8(); return err }, nil},
		{"u16 short", func(c *Cursor) error { _, err := c.ReadU16(); return err }, []byte{1}},
		{"u32 short", func(c *Cursor) error { _, err := c.ReadU32(); return err }, []byte{1, 2, 3}},
		{"u48 short", func(c *Cursor) error { _, err := c.ReadU48(); return err }, []byte{1, 2, 3, 4, 5}},
		{"bytes short", func(c *Cursor) error { _, err := c.ReadBytes(3); return err }, []byte{1, 2}},
		{"sub too big", func(c *Cursor) error { _, err := c.Sub(5); return err }, []byte{1, 2}},
	}

	for _, tt := range tests {
		err := tt.read(NewCursor(tt.data))
		if !errors.Is(err, ErrTruncated) {
			t.Errorf("%s: got %v, want ErrTruncated", tt.name, err)
		}
	}
}

func TestCursorSub(t *testing.T) {
	c := NewCursor([]byte{1, 2, 3, 4, 5})
	sub, err := c.Sub(3)
	if err != nil {
		t.Fatalf("Sub(3) returned error: %v", err)
	}

	// The parent skips past the sub-cursor's window.
	if c.Pos() != 3 {
		t.Errorf("parent Pos() = %d, want 3", c.Pos())
	}

	got, err := sub.ReadBytes(3)
	if err != nil || !bytes.Equal(got, []byte{1, 2, 3}) {
		t.Errorf("sub ReadBytes(3) = %v, %v", got, err)
	}

	// Sub-cursor reads are confined to the window.
	if _, err := sub.ReadU8(); !errors.Is(err, ErrTruncated) {
		t.Errorf("read past sub limit: got %v, want ErrTruncated", err)
	}
}

func TestCursorReadBytesCopies(t *testing.T) {
	data := []byte{1, 2, 3}
	c := NewCursor(data)
	got, err := c.ReadBytes(3)
	if err != nil {
		t.Fatalf("ReadBytes returned error: %v", err)
	}
	data[0] = 99
	if got[0] != 1 {
		t.Error("ReadBytes did not copy out of the packet buffer")
	}
}

func TestWriterRoundTrip(t *testing.T) {
	w := NewWriter()
	if err := w.WriteU8(0x01); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteU16(0x0203); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteU32(0x04050607); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteU48(0x08090a0b0c0d); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteBytes([]byte{0xfe}); err != nil {
		t.Fatal(err)
	}

	want := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0xfe}
	if !bytes.Equal(w.Bytes(), want) {
		t.Errorf("Bytes() = %v, want %v", w.Bytes(), want)
	}
	if w.Len() != len(want) {
		t.Errorf("Len() = %d, want %d", w.Len(), len(want))
	}
}

func TestWriterCapsMessageSize(t *testing.T) {
	w := NewWriter()
	if err := w.WriteBytes(make([]byte, MaxMessageSize)); err != nil {
		t.Fatalf("writing %d bytes failed: %v", MaxMessageSize, err)
	}
	if err := w.WriteU8(0); err == nil || !errors.Is(err, ErrMessageTooLong) {
		t.Errorf("write past cap: got %v, want ErrMessageTooLong", err)
	}
}

func TestWriterPatchU16(t *testing.T) {
	w := NewWriter()
	_ = w.WriteU16(0)
	_ = w.WriteU8(0xff)
	w.PatchU16(0, 0xbeef)
	if !bytes.Equal(w.Bytes(), []byte{0xbe, 0xef, 0xff}) {
		t.Errorf("PatchU16 result = %v", w.Bytes())
	}
}
