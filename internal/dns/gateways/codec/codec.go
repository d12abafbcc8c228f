// Package codec encodes and decodes full DNS messages: header, question
// section, and the three resource record sections, per RFC 1035 with
// EDNS(0) per RFC 6891. Record bodies are delegated to the rrdata package.
package codec

import (
	"fmt"

	"github.com/haukened/dog/internal/dns/common/log"
	"github.com/haukened/dog/internal/dns/common/rrdata"
	"github.com/haukened/dog/internal/dns/common/wire"
	"github.com/haukened/dog/internal/dns/domain"
)

// Codec translates between domain.Message and the binary wire format.
type Codec struct {
	logger log.Logger
}

// New creates a codec using the provided logger.
func New(logger log.Logger) *Codec {
	return &Codec{logger: logger}
}

// EncodeQuery builds and encodes a query message: the given questions,
// recursion desired, tweak bits applied, and an OPT record appended unless
// EDNS is disabled.
func (c *Codec) EncodeQuery(id uint16, questions []domain.Question, tweaks domain.Tweaks, edns domain.EDNSMode) ([]byte, error) {
	msg := domain.NewQuery(id, questions, tweaks)
	if edns != domain.EDNSDisable {
		opt := NewOptRecord(tweaks.BufferSize)
		msg.Additional = append(msg.Additional, opt)
	}
	return c.Encode(msg)
}

// Encode serialises a message. The input is not mutated; names are written
// without compression.
func (c *Codec) Encode(m domain.Message) ([]byte, error) {
	w := wire.NewWriter()

	if err := c.encodeHeader(w, m); err != nil {
		return nil, err
	}
	for i, q := range m.Questions {
		if err := encodeQuestion(w, q); err != nil {
			return nil, fmt.Errorf("question %d: %w", i, err)
		}
	}
	for _, section := range []struct {
		name    string
		records []domain.ResourceRecord
	}{
		{"answer", m.Answers},
		{"authority", m.Authority},
		{"additional", m.Additional},
	} {
		for i, rr := range section.records {
			if err := encodeRecord(w, rr); err != nil {
				return nil, fmt.Errorf("%s record %d: %w", section.name, i, err)
			}
		}
	}

	c.logger.Debug(map[string]any{
		"id":   m.ID,
		"size": w.Len(),
	}, "Encoded DNS message")

	return w.Bytes(), nil
}

func (c *Codec) encodeHeader(w *wire.Writer, m domain.Message) error {
	if err := w.WriteU16(m.ID); err != nil {
		return err
	}
	if err := w.WriteU16(m.Flags.Pack()); err != nil {
		return err
	}
	for _, count := range []int{len(m.Questions), len(m.Answers), len(m.Authority), len(m.Additional)} {
		if count > 65535 {
			return fmt.Errorf("section too large: %d records", count)
		}
		if err := w.WriteU16(uint16(count)); err != nil {
			return err
		}
	}
	return nil
}

func encodeQuestion(w *wire.Writer, q domain.Question) error {
	if err := w.WriteName(q.Name); err != nil {
		return err
	}
	if err := w.WriteU16(uint16(q.Type)); err != nil {
		return err
	}
	return w.WriteU16(uint16(q.Class))
}

// encodeRecord writes one resource record. The typed body is preferred
// when present; otherwise the raw RDATA bytes are emitted as-is.
func encodeRecord(w *wire.Writer, rr domain.ResourceRecord) error {
	if err := w.WriteName(rr.Name); err != nil {
		return err
	}
	if err := w.WriteU16(uint16(rr.Type)); err != nil {
		return err
	}
	if err := w.WriteU16(uint16(rr.Class)); err != nil {
		return err
	}
	if err := w.WriteU32(rr.TTL); err != nil {
		return err
	}

	// Write a length placeholder, then the body, then patch the real length.
	lengthOffset := w.Len()
	if err := w.WriteU16(0); err != nil {
		return err
	}
	bodyStart := w.Len()
	if rr.Body != nil {
		if err := rrdata.Encode(w, rr.Body); err != nil {
			return err
		}
	} else if err := w.WriteBytes(rr.Data); err != nil {
		return err
	}
	bodyLen := w.Len() - bodyStart
	if bodyLen > 65535 {
		return fmt.Errorf("record data too large: %d bytes", bodyLen)
	}
	w.PatchU16(lengthOffset, uint16(bodyLen))
	return nil
}

// Decode parses a complete message. Every name and byte buffer in the
// result is owned by the returned Message; the input slice may be reused
// immediately.
func (c *Codec) Decode(data []byte) (domain.Message, error) {
	cur := wire.NewCursor(data)
	var m domain.Message

	id, err := cur.ReadU16()
	if err != nil {
		return domain.Message{}, fmt.Errorf("header: %w", err)
	}
	m.ID = id

	flagsWord, err := cur.ReadU16()
	if err != nil {
		return domain.Message{}, fmt.Errorf("header: %w", err)
	}
	if m.Flags, err = domain.UnpackFlags(flagsWord); err != nil {
		return domain.Message{}, err
	}

	var counts [4]uint16
	for i := range counts {
		if counts[i], err = cur.ReadU16(); err != nil {
			return domain.Message{}, fmt.Errorf("header: %w", err)
		}
	}

	for i := 0; i < int(counts[0]); i++ {
		q, err := decodeQuestion(cur)
		if err != nil {
			return domain.Message{}, fmt.Errorf("question %d: %w", i, err)
		}
		m.Questions = append(m.Questions, q)
	}

	for _, section := range []struct {
		name  string
		count uint16
		dest  *[]domain.ResourceRecord
	}{
		{"answer", counts[1], &m.Answers},
		{"authority", counts[2], &m.Authority},
		{"additional", counts[3], &m.Additional},
	} {
		for i := 0; i < int(section.count); i++ {
			rr, err := decodeRecord(data, cur)
			if err != nil {
				return domain.Message{}, fmt.Errorf("%s record %d: %w", section.name, i, err)
			}
			*section.dest = append(*section.dest, rr)
		}
	}

	if cur.Remaining() != 0 {
		return domain.Message{}, fmt.Errorf("%d trailing bytes after message sections", cur.Remaining())
	}

	c.logger.Debug(map[string]any{
		"id":         m.ID,
		"rcode":      m.Flags.RCode.String(),
		"answers":    len(m.Answers),
		"authority":  len(m.Authority),
		"additional": len(m.Additional),
	}, "Decoded DNS message")

	return m, nil
}

func decodeQuestion(cur *wire.Cursor) (domain.Question, error) {
	name, err := wire.ReadName(cur)
	if err != nil {
		return domain.Question{}, err
	}
	qtype, err := cur.ReadU16()
	if err != nil {
		return domain.Question{}, err
	}
	qclass, err := cur.ReadU16()
	if err != nil {
		return domain.Question{}, err
	}
	return domain.Question{
		Name:  name,
		Type:  domain.RRType(qtype),
		Class: domain.RRClass(qclass),
	}, nil
}

// decodeRecord reads one resource record. The body parser works against a
// sub-cursor bounded to exactly RDLENGTH bytes and must consume all of
// them; record types that embed names may still resolve compression
// pointers into earlier message bytes through the shared buffer.
func decodeRecord(data []byte, cur *wire.Cursor) (domain.ResourceRecord, error) {
	name, err := wire.ReadName(cur)
	if err != nil {
		return domain.ResourceRecord{}, err
	}

	rrType, err := cur.ReadU16()
	if err != nil {
		return domain.ResourceRecord{}, err
	}
	class, err := cur.ReadU16()
	if err != nil {
		return domain.ResourceRecord{}, err
	}
	ttl, err := cur.ReadU32()
	if err != nil {
		return domain.ResourceRecord{}, err
	}
	rdLength, err := cur.ReadU16()
	if err != nil {
		return domain.ResourceRecord{}, err
	}

	rdataStart := cur.Pos()
	sub, err := cur.Sub(int(rdLength))
	if err != nil {
		return domain.ResourceRecord{}, err
	}

	body, err := rrdata.Decode(domain.RRType(rrType), sub)
	if err != nil {
		return domain.ResourceRecord{}, err
	}
	if sub.Remaining() != 0 {
		return domain.ResourceRecord{}, wire.ErrWrongRdataLength
	}

	raw := make([]byte, rdLength)
	copy(raw, data[rdataStart:rdataStart+int(rdLength)])

	return domain.ResourceRecord{
		Name:  name,
		Type:  domain.RRType(rrType),
		Class: domain.RRClass(class),
		TTL:   ttl,
		Data:  raw,
		Body:  body,
	}, nil
}
