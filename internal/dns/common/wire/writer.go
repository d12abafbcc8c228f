package wire

import "encoding/binary"

// MaxMessageSize is the largest DNS message either side of the codec will
// produce or accept, per RFC 1035 section 2.3.4 as extended by TCP framing.
const MaxMessageSize = 65535

// Writer accumulates big-endian wire data and refuses to grow past
// MaxMessageSize.
type Writer struct {
	buf []byte
}

// NewWriter returns an empty writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return len(w.buf)
}

// Bytes returns the accumulated message bytes.
func (w *Writer) Bytes() []byte {
	return w.buf
}

func (w *Writer) grow(n int) ([]byte, error) {
	if len(w.buf)+n > MaxMessageSize {
		return nil, ErrMessageTooLong
	}
	w.buf = append(w.buf, make([]byte, n)...)
	return w.buf[len(w.buf)-n:], nil
}

// WriteU8 appends a single byte.
func (w *Writer) WriteU8(v uint8) error {
	b, err := w.grow(1)
	if err != nil {
		return err
	}
	b[0] = v
	return nil
}

// WriteU16 appends a big-endian 16-bit value.
func (w *Writer) WriteU16(v uint16) error {
	b, err := w.grow(2)
	if err != nil {
		return err
	}
	binary.BigEndian.PutUint16(b, v)
	return nil
}

// WriteU32 appends a big-endian 32-bit value.
func (w *Writer) WriteU32(v uint32) error {
	b, err := w.grow(4)
	if err != nil {
		return err
	}
	binary.BigEndian.PutUint32(b, v)
	return nil
}

// WriteU48 appends a big-endian 48-bit value. The top 16 bits of v are
// discarded.
func (w *Writer) WriteU48(v uint64) error {
	b, err := w.grow(6)
	if err != nil {
		return err
	}
	binary.BigEndian.PutUint16(b, uint16(v>>32))
	binary.BigEndian.PutUint32(b[2:], uint32(v))
	return nil
}

// WriteBytes appends raw bytes.
func (w *Writer) WriteBytes(p []byte) error {
	b, err := w.grow(len(p))
	if err != nil {
		return err
	}
	copy(b, p)
	return nil
}

// PatchU16 overwrites a big-endian 16-bit value at an earlier offset.
// Used to fix up length prefixes once the final size is known.
func (w *Writer) PatchU16(offset int, v uint16) {
	binary.BigEndian.PutUint16(w.buf[offset:], v)
}
