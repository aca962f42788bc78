package riscv

import "fmt"

// Imm is a signed immediate: a raw value together with its declared
// bit-width. No state outside the low Width bits is ever observable —
// NewImm masks and SignedImm range-checks on construction. Semantic
// value is derived on demand by SignExtend, never stored separately.
type Imm struct {
	raw   uint32
	width uint
}

func mask(width uint) uint64 {
	if width >= 32 {
		return 0xFFFFFFFF
	}
	return (uint64(1) << width) - 1
}

// NewImm builds an Imm from an already-assembled bit pattern (as the
// decoder does), clearing anything above the declared width.
func NewImm(raw uint32, width uint) Imm {
	return Imm{raw: raw & uint32(mask(width)), width: width}
}

// SignedImm range-checks a signed value against a bit-width and packs it
// into two's-complement form. Used by the parser to turn a parsed
// decimal/hex operand into a format-ready Imm.
func SignedImm(value int64, width uint) (Imm, error) {
	min := -(int64(1) << (width - 1))
	max := (int64(1) << (width - 1)) - 1
	if value < min || value > max {
		return Imm{}, fmt.Errorf("immediate %d out of range for %d-bit signed field", value, width)
	}
	raw := uint32(value) & uint32(mask(width))
	return Imm{raw: raw, width: width}, nil
}

// Width reports the declared bit-width of the field this immediate fills.
func (i Imm) Width() uint { return i.width }

// Low returns the stored raw bits (always within Width).
func (i Imm) Low() uint32 { return i.raw }

// SignExtend interprets the low Width bits as two's-complement and
// sign-extends to a full 64-bit signed value.
func (i Imm) SignExtend() int64 {
	if i.width == 0 || i.width >= 64 {
		return int64(i.raw)
	}
	signBit := uint32(1) << (i.width - 1)
	if i.raw&signBit != 0 {
		return int64(i.raw) - int64(uint64(1)<<i.width)
	}
	return int64(i.raw)
}

// Uimm is an unsigned immediate: raw value plus bit-width, zero-extended.
type Uimm struct {
	raw   uint32
	width uint
}

// NewUimm builds a Uimm from an already-assembled bit pattern.
func NewUimm(raw uint32, width uint) Uimm {
	return Uimm{raw: raw & uint32(mask(width)), width: width}
}

// UnsignedImm range-checks a non-negative value against a bit-width.
func UnsignedImm(value int64, width uint) (Uimm, error) {
	if value < 0 || value > int64(mask(width)) {
		return Uimm{}, fmt.Errorf("immediate %d out of range for %d-bit unsigned field", value, width)
	}
	return Uimm{raw: uint32(value), width: width}, nil
}

func (u Uimm) Width() uint  { return u.width }
func (u Uimm) Low() uint32  { return u.raw }
func (u Uimm) Value() int64 { return int64(u.raw) }
