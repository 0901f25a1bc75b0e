package wary

import "testing"

func TestFixedWidthReads(t *testing.T) {
	data := []byte{0x12, 0x34, 0x56, 0x78, 0x9a, 0xbc, 0xde, 0xf0}

	t.Run("uint8", func(t *testing.T) {
		r := NewReader(Bytes(data))
		v, err := r.ReadUint8()
		if err != nil || v != 0x12 {
			t.Errorf("ReadUint8 = %#x, %v", v, err)
		}
	})

	t.Run("uint16 big endian", func(t *testing.T) {
		r := NewReader(Bytes(data))
		v, err := r.ReadUint16BE()
		if err != nil || v != 0x1234 {
			t.Errorf("ReadUint16BE = %#x, %v", v, err)
		}
		if r.Offset() != 2 {
			t.Errorf("Offset = %d, want 2", r.Offset())
		}
	})

	t.Run("uint16 little endian", func(t *testing.T) {
		r := NewReader(Bytes(data))
		v, err := r.ReadUint16LE()
		if err != nil || v != 0x3412 {
			t.Errorf("ReadUint16LE = %#x, %v", v, err)
		}
	})

	t.Run("uint32 both orders", func(t *testing.T) {
		r := NewReader(Bytes(data))
		be, err := r.ReadUint32BE()
		if err != nil || be != 0x12345678 {
			t.Errorf("ReadUint32BE = %#x, %v", be, err)
		}
		r = NewReader(Bytes(data))
		le, err := r.ReadUint32LE()
		if err != nil || le != 0x78563412 {
			t.Errorf("ReadUint32LE = %#x, %v", le, err)
		}
	})

	t.Run("uint64 both orders", func(t *testing.T) {
		r := NewReader(Bytes(data))
		be, err := r.ReadUint64BE()
		if err != nil || be != 0x123456789abcdef0 {
			t.Errorf("ReadUint64BE = %#x, %v", be, err)
		}
		r = NewReader(Bytes(data))
		le, err := r.ReadUint64LE()
		if err != nil || le != 0xf0debc9a78563412 {
			t.Errorf("ReadUint64LE = %#x, %v", le, err)
		}
	})

	t.Run("short input reports exact shortfall", func(t *testing.T) {
		r := NewReader(Bytes([]byte{0x01, 0x02, 0x03}))
		_, err := r.ReadUint64BE()
		e, ok := AsError(err)
		if !ok {
			t.Fatalf("expected *Error, got %v", err)
		}
		if got := e.Retry(); got != Exact(5) {
			t.Errorf("Retry() = %v, want %v", got, Exact(5))
		}
		if r.Offset() != 0 {
			t.Errorf("cursor moved on failure: Offset = %d", r.Offset())
		}
	})
}

func TestReadUintDecimal(t *testing.T) {
	t.Run("reads maximal digit run", func(t *testing.T) {
		r := NewReader(MustText("1234rest"))
		v, err := r.ReadUintDecimal()
		if err != nil || v != 1234 {
			t.Fatalf("ReadUintDecimal = %d, %v", v, err)
		}
		if r.Offset() != 4 {
			t.Errorf("Offset = %d, want 4", r.Offset())
		}
	})

	t.Run("no digits at end of input is retryable", func(t *testing.T) {
		r := NewReader(MustText(""))
		_, err := r.ReadUintDecimal()
		e, ok := AsError(err)
		if !ok || e.IsFatal() {
			t.Fatalf("expected retryable error, got %v", err)
		}
		if got := e.Retry(); got != Exact(1) {
			t.Errorf("Retry() = %v, want %v", got, Exact(1))
		}
	})

	t.Run("non-digit at cursor is fatal", func(t *testing.T) {
		r := NewReader(MustText("x1"))
		_, err := r.ReadUintDecimal()
		e, ok := AsError(err)
		if !ok || e.Kind() != KindExpected {
			t.Fatalf("expected expectation error, got %v", err)
		}
	})

	t.Run("overflow is invalid data and does not consume", func(t *testing.T) {
		r := NewReader(MustText("18446744073709551616")) // 2^64
		_, err := r.ReadUintDecimal()
		e, ok := AsError(err)
		if !ok || e.Kind() != KindInvalid {
			t.Fatalf("expected invalid error, got %v", err)
		}
		if r.Offset() != 0 {
			t.Errorf("cursor moved on failure: Offset = %d", r.Offset())
		}
	})

	t.Run("max value parses", func(t *testing.T) {
		r := NewReader(MustText("18446744073709551615")) // 2^64 - 1
		v, err := r.ReadUintDecimal()
		if err != nil || v != 1<<64-1 {
			t.Errorf("ReadUintDecimal = %d, %v", v, err)
		}
	})
}

func TestReadDigits(t *testing.T) {
	t.Run("exact width", func(t *testing.T) {
		r := NewReader(MustText("0425rest"))
		v, err := r.ReadDigits(4)
		if err != nil || v != 425 {
			t.Fatalf("ReadDigits = %d, %v", v, err)
		}
		if r.Offset() != 4 {
			t.Errorf("Offset = %d, want 4", r.Offset())
		}
	})

	t.Run("non-digit inside the window is fatal at its offset", func(t *testing.T) {
		r := NewReader(MustText("12x4"))
		_, err := r.ReadDigits(4)
		e, ok := AsError(err)
		if !ok || e.Kind() != KindExpected {
			t.Fatalf("expected expectation error, got %v", err)
		}
		if got, want := e.Span(), (Span{Start: 2, End: 3}); got != want {
			t.Errorf("span = %v, want %v", got, want)
		}
		if r.Offset() != 0 {
			t.Errorf("cursor moved on failure: Offset = %d", r.Offset())
		}
	})
}
