package wary

import "encoding/binary"

// Fixed-width numeric reads over binary input. Each read either
// consumes exactly the encoded width or fails retryable with the exact
// shortfall, leaving the cursor unchanged.

// ReadUint8 consumes one byte.
func (r *Reader) ReadUint8() (uint8, error) {
	return r.ReadByte()
}

// ReadUint16BE consumes a big-endian uint16.
func (r *Reader) ReadUint16BE() (uint16, error) {
	in, err := r.Take(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(in.RawBytes()), nil
}

// ReadUint16LE consumes a little-endian uint16.
func (r *Reader) ReadUint16LE() (uint16, error) {
	in, err := r.Take(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(in.RawBytes()), nil
}

// ReadUint32BE consumes a big-endian uint32.
func (r *Reader) ReadUint32BE() (uint32, error) {
	in, err := r.Take(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(in.RawBytes()), nil
}

// ReadUint32LE consumes a little-endian uint32.
func (r *Reader) ReadUint32LE() (uint32, error) {
	in, err := r.Take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(in.RawBytes()), nil
}

// ReadUint64BE consumes a big-endian uint64.
func (r *Reader) ReadUint64BE() (uint64, error) {
	in, err := r.Take(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(in.RawBytes()), nil
}

// ReadUint64LE consumes a little-endian uint64.
func (r *Reader) ReadUint64LE() (uint64, error) {
	in, err := r.Take(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(in.RawBytes()), nil
}

// IsDigit reports whether b is an ASCII decimal digit.
func IsDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

// ReadUintDecimal consumes a non-empty run of ASCII digits and returns
// its value. No digits at the end of input is retryable; a non-digit
// byte at the cursor is a fatal expectation. A value that overflows 64
// bits is invalid data, not an expectation mismatch.
func (r *Reader) ReadUintDecimal() (uint64, error) {
	digits, _ := r.Remaining().SplitPrefix(IsDigit)
	if digits.IsEmpty() {
		if r.AtEnd() {
			return 0, NewIncomplete(r.cursorSpan(), "decimal digit", Exact(1))
		}
		at := r.input.base + r.pos
		return 0, NewExpected(Span{Start: at, End: at + 1}, "decimal digit")
	}
	var v uint64
	for _, b := range digits.RawBytes() {
		d := uint64(b - '0')
		if v > (1<<64-1-d)/10 {
			return 0, NewInvalid(digits.Span(), "decimal value overflows 64 bits")
		}
		v = v*10 + d
	}
	r.pos += digits.Len()
	return v, nil
}

// ReadDigits consumes exactly n ASCII digits and returns their value.
// Fewer than n bytes left is retryable with the exact shortfall; a
// non-digit among them is fatal.
func (r *Reader) ReadDigits(n int) (uint64, error) {
	in, err := r.Peek(n)
	if err != nil {
		return 0, err
	}
	var v uint64
	for i, b := range in.RawBytes() {
		if !IsDigit(b) {
			at := in.Span().Start + i
			return 0, NewExpected(Span{Start: at, End: at + 1}, "decimal digit")
		}
		d := uint64(b - '0')
		if v > (1<<64-1-d)/10 {
			return 0, NewInvalid(in.Span(), "decimal value overflows 64 bits")
		}
		v = v*10 + d
	}
	r.pos += n
	return v, nil
}
