package domain

import (
	"github.com/haukened/dog/internal/dns/common/wire"
)

// Opcode is the four-bit operation field of a message header.
type Opcode uint8

// Assigned opcodes. Opcode 3 is unassigned and rejected on decode.
const (
	OpcodeQuery  Opcode = 0
	OpcodeIQuery Opcode = 1
	OpcodeStatus Opcode = 2
	OpcodeNotify Opcode = 4
	OpcodeUpdate Opcode = 5
)

// Flags is the unpacked 16-bit flags word of a DNS message header.
type Flags struct {
	Response           bool   // QR
	Opcode             Opcode // four bits
	Authoritative      bool   // AA
	Truncated          bool   // TC
	RecursionDesired   bool   // RD
	RecursionAvailable bool   // RA
	AuthenticData      bool   // AD
	CheckingDisabled   bool   // CD
	RCode              RCode  // low four bits only; EDNS may extend
}

// Pack assembles the flags word. The reserved Z bit is always emitted as
// zero, and only the low four RCode bits fit in the header.
func (f Flags) Pack() uint16 {
	var v uint16
	if f.Response {
		v |= 1 << 15
	}
	v |= uint16(f.Opcode&0x0F) << 11
	if f.Authoritative {
		v |= 1 << 10
	}
	if f.Truncated {
		v |= 1 << 9
	}
	if f.RecursionDesired {
		v |= 1 << 8
	}
	if f.RecursionAvailable {
		v |= 1 << 7
	}
	if f.AuthenticData {
		v |= 1 << 5
	}
	if f.CheckingDisabled {
		v |= 1 << 4
	}
	v |= uint16(f.RCode) & 0x000F
	return v
}

// UnpackFlags splits a header flags word into its fields. A set reserved Z
// bit or an unassigned opcode is a wire error.
func UnpackFlags(v uint16) (Flags, error) {
	if v&(1<<6) != 0 {
		return Flags{}, wire.ErrReservedBitsSet
	}
	opcode := Opcode(v >> 11 & 0x0F)
	switch opcode {
	case OpcodeQuery, OpcodeIQuery, OpcodeStatus, OpcodeNotify, OpcodeUpdate:
	default:
		return Flags{}, wire.ErrUnknownOpcode
	}
	return Flags{
		Response:           v&(1<<15) != 0,
		Opcode:             opcode,
		Authoritative:      v&(1<<10) != 0,
		Truncated:          v&(1<<9) != 0,
		RecursionDesired:   v&(1<<8) != 0,
		RecursionAvailable: v&(1<<7) != 0,
		AuthenticData:      v&(1<<5) != 0,
		CheckingDisabled:   v&(1<<4) != 0,
		RCode:              RCode(v & 0x000F),
	}, nil
}
