// Package json implements a JSON value parser on top of the wary core,
// both as a working example of combinator construction and as the
// end-to-end fixture for incremental parsing: wrong bytes fail fatal,
// while structures cut off at the end of input fail retryable.
//
// String and number values borrow their raw bytes from the original
// input without copying; Field.Decode and Value.Decode convert to
// owned Go values when the caller needs them.
package json

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/dhamidi/wary"
)

// Kind discriminates parsed JSON values.
type Kind int

const (
	Null Kind = iota
	Bool
	Number
	String
	Array
	Object
)

var kindNames = map[Kind]string{
	Null:   "null",
	Bool:   "bool",
	Number: "number",
	String: "string",
	Array:  "array",
	Object: "object",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Value is a parsed JSON value. Raw holds the borrowed source bytes of
// a string (content between the quotes, escapes intact) or a number
// (the full literal); Items and Fields hold children in source order.
type Value struct {
	Kind   Kind
	Bool   bool
	Raw    wary.Input
	Items  []Value
	Fields []Field
}

// Field is one member of a JSON object. Name borrows the raw key bytes
// between the quotes.
type Field struct {
	Name  wary.Input
	Value Value
}

// Parse reads a single JSON value spanning the entire input.
func Parse(in wary.Input) (Value, error) {
	var v Value
	err := wary.ReadAll(in, func(r *wary.Reader) error {
		skipSpace(r)
		val, err := readValue(r)
		if err != nil {
			return err
		}
		v = val
		skipSpace(r)
		return nil
	})
	return v, err
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func skipSpace(r *wary.Reader) {
	r.SkipWhile(isSpace)
}

func readValue(r *wary.Reader) (Value, error) {
	var v Value
	err := r.Context("value", func(r *wary.Reader) error {
		b, err := r.PeekByte()
		if err != nil {
			return err
		}
		switch {
		case b == '{':
			v, err = readObject(r)
		case b == '[':
			v, err = readArray(r)
		case b == '"':
			v, err = readString(r)
		case b == 't' || b == 'f' || b == 'n':
			v, err = readLiteral(r)
		case b == '-' || wary.IsDigit(b):
			v, err = readNumber(r)
		default:
			span := r.Remaining().Span()
			return wary.NewExpected(wary.Span{Start: span.Start, End: span.Start + 1}, "json value")
		}
		return err
	})
	return v, err
}

func readObject(r *wary.Reader) (Value, error) {
	v := Value{Kind: Object}
	err := r.Context("object", func(r *wary.Reader) error {
		if err := r.ConsumeByte('{'); err != nil {
			return err
		}
		skipSpace(r)
		if b, err := r.PeekByte(); err != nil {
			return err
		} else if b == '}' {
			return r.ConsumeByte('}')
		}
		for {
			var f Field
			if err := r.Context("member", func(r *wary.Reader) error {
				skipSpace(r)
				name, err := readString(r)
				if err != nil {
					return err
				}
				f.Name = name.Raw
				skipSpace(r)
				if err := r.ConsumeByte(':'); err != nil {
					return err
				}
				skipSpace(r)
				f.Value, err = readValue(r)
				return err
			}); err != nil {
				return err
			}
			v.Fields = append(v.Fields, f)
			skipSpace(r)
			b, err := r.ReadByte()
			if err != nil {
				return err
			}
			switch b {
			case ',':
				skipSpace(r)
			case '}':
				return nil
			default:
				span := r.Remaining().Span()
				return wary.NewExpected(wary.Span{Start: span.Start - 1, End: span.Start}, `"," or "}"`)
			}
		}
	})
	return v, err
}

func readArray(r *wary.Reader) (Value, error) {
	v := Value{Kind: Array}
	err := r.Context("array", func(r *wary.Reader) error {
		if err := r.ConsumeByte('['); err != nil {
			return err
		}
		skipSpace(r)
		if b, err := r.PeekByte(); err != nil {
			return err
		} else if b == ']' {
			return r.ConsumeByte(']')
		}
		for {
			item, err := readValue(r)
			if err != nil {
				return err
			}
			v.Items = append(v.Items, item)
			skipSpace(r)
			b, err := r.ReadByte()
			if err != nil {
				return err
			}
			switch b {
			case ',':
				skipSpace(r)
			case ']':
				return nil
			default:
				span := r.Remaining().Span()
				return wary.NewExpected(wary.Span{Start: span.Start - 1, End: span.Start}, `"," or "]"`)
			}
		}
	})
	return v, err
}

// stringChunk matches bytes that need no special handling inside a
// string literal: everything except the closing quote, a backslash,
// and control characters.
func stringChunk(b byte) bool {
	return b != '"' && b != '\\' && b >= 0x20
}

func isHexDigit(b byte) bool {
	return wary.IsDigit(b) || ('a' <= b && b <= 'f') || ('A' <= b && b <= 'F')
}

func readString(r *wary.Reader) (Value, error) {
	v := Value{Kind: String}
	err := r.Context("string", func(r *wary.Reader) error {
		if err := r.ConsumeByte('"'); err != nil {
			return err
		}
		content := r.Remaining()
		start := r.Offset()
		for {
			r.SkipWhile(stringChunk)
			b, err := r.PeekByte()
			if err != nil {
				// Unterminated: any number of bytes could still
				// arrive before the closing quote.
				return wary.NewIncomplete(r.Remaining().Span(), "string terminator", wary.Unknown())
			}
			switch {
			case b == '"':
				raw, _, serr := content.SplitAt(r.Offset() - start)
				if serr != nil {
					return serr
				}
				v.Raw = raw
				return r.ConsumeByte('"')
			case b == '\\':
				if err := readEscape(r); err != nil {
					return err
				}
			default:
				span := r.Remaining().Span()
				return wary.NewInvalid(wary.Span{Start: span.Start, End: span.Start + 1}, "control character in string")
			}
		}
	})
	return v, err
}

func readEscape(r *wary.Reader) error {
	return r.Context("escape", func(r *wary.Reader) error {
		if err := r.ConsumeByte('\\'); err != nil {
			return err
		}
		b, err := r.ReadByte()
		if err != nil {
			return err
		}
		switch b {
		case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
			return nil
		case 'u':
			for i := 0; i < 4; i++ {
				h, err := r.ReadByte()
				if err != nil {
					return err
				}
				if !isHexDigit(h) {
					span := r.Remaining().Span()
					return wary.NewExpected(wary.Span{Start: span.Start - 1, End: span.Start}, "hex digit")
				}
			}
			return nil
		default:
			span := r.Remaining().Span()
			return wary.NewExpected(wary.Span{Start: span.Start - 1, End: span.Start}, "string escape")
		}
	})
}

func readNumber(r *wary.Reader) (Value, error) {
	v := Value{Kind: Number}
	err := r.Context("number", func(r *wary.Reader) error {
		raw := r.Remaining()
		start := r.Offset()
		if b, _ := r.PeekByte(); b == '-' {
			_ = r.Skip(1)
		}
		digits := r.TakeWhile(wary.IsDigit)
		if digits.IsEmpty() {
			if r.AtEnd() {
				return wary.NewIncomplete(r.Remaining().Span(), "decimal digit", wary.Exact(1))
			}
			span := r.Remaining().Span()
			return wary.NewExpected(wary.Span{Start: span.Start, End: span.Start + 1}, "decimal digit")
		}
		first := digits.RawBytes()[0]
		if first == '0' && digits.Len() > 1 {
			return wary.NewInvalid(digits.Span(), "leading zero in number")
		}
		if b, _ := r.PeekByte(); b == '.' {
			_ = r.Skip(1)
			if err := requireDigits(r, "digit after decimal point"); err != nil {
				return err
			}
		}
		if b, _ := r.PeekByte(); b == 'e' || b == 'E' {
			_ = r.Skip(1)
			if b, _ := r.PeekByte(); b == '+' || b == '-' {
				_ = r.Skip(1)
			}
			if err := requireDigits(r, "exponent digit"); err != nil {
				return err
			}
		}
		head, _, serr := raw.SplitAt(r.Offset() - start)
		if serr != nil {
			return serr
		}
		v.Raw = head
		return nil
	})
	return v, err
}

func requireDigits(r *wary.Reader, what string) error {
	digits := r.TakeWhile(wary.IsDigit)
	if !digits.IsEmpty() {
		return nil
	}
	if r.AtEnd() {
		return wary.NewIncomplete(r.Remaining().Span(), what, wary.Exact(1))
	}
	span := r.Remaining().Span()
	return wary.NewExpected(wary.Span{Start: span.Start, End: span.Start + 1}, what)
}

// readLiteral dispatches on the already-peeked first byte rather than
// trying alternatives blindly: with Reader.Any a fatal mismatch from
// "true" would outrank the retryable result of a truncated "null".
func readLiteral(r *wary.Reader) (Value, error) {
	var v Value
	err := r.Context("literal", func(r *wary.Reader) error {
		b, err := r.PeekByte()
		if err != nil {
			return err
		}
		switch b {
		case 't':
			if err := r.Consume([]byte("true")); err != nil {
				return err
			}
			v = Value{Kind: Bool, Bool: true}
		case 'f':
			if err := r.Consume([]byte("false")); err != nil {
				return err
			}
			v = Value{Kind: Bool}
		case 'n':
			if err := r.Consume([]byte("null")); err != nil {
				return err
			}
			v = Value{Kind: Null}
		default:
			span := r.Remaining().Span()
			return wary.NewExpected(wary.Span{Start: span.Start, End: span.Start + 1}, "json literal")
		}
		return nil
	})
	return v, err
}

// Decode converts the parsed value into an owned Go representation:
// nil, bool, float64, string, []any, or map[string]any. This is where
// copying happens; parsing itself only borrows.
func (v Value) Decode() (any, error) {
	switch v.Kind {
	case Null:
		return nil, nil
	case Bool:
		return v.Bool, nil
	case Number:
		f, err := strconv.ParseFloat(string(v.Raw.RawBytes()), 64)
		if err != nil {
			return nil, fmt.Errorf("decode number: %w", err)
		}
		return f, nil
	case String:
		return unescape(v.Raw.RawBytes())
	case Array:
		items := make([]any, 0, len(v.Items))
		for _, it := range v.Items {
			d, err := it.Decode()
			if err != nil {
				return nil, err
			}
			items = append(items, d)
		}
		return items, nil
	case Object:
		fields := make(map[string]any, len(v.Fields))
		for _, f := range v.Fields {
			name, err := unescape(f.Name.RawBytes())
			if err != nil {
				return nil, err
			}
			d, err := f.Value.Decode()
			if err != nil {
				return nil, err
			}
			fields[name] = d
		}
		return fields, nil
	default:
		return nil, fmt.Errorf("decode: unknown kind %v", v.Kind)
	}
}

// unescape resolves JSON string escapes. The input has already been
// validated during parsing, so malformed escapes only occur on misuse.
func unescape(raw []byte) (string, error) {
	if bytes.IndexByte(raw, '\\') < 0 {
		return string(raw), nil
	}
	var sb strings.Builder
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c != '\\' {
			sb.WriteByte(c)
			continue
		}
		i++
		if i >= len(raw) {
			return "", fmt.Errorf("unescape string: trailing backslash")
		}
		switch raw[i] {
		case '"', '\\', '/':
			sb.WriteByte(raw[i])
		case 'b':
			sb.WriteByte('\b')
		case 'f':
			sb.WriteByte('\f')
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case 'u':
			r, size, err := unescapeUnicode(raw[i-1:])
			if err != nil {
				return "", err
			}
			sb.WriteRune(r)
			i += size - 2
		default:
			return "", fmt.Errorf("unescape string: unknown escape %q", raw[i])
		}
	}
	return sb.String(), nil
}

// unescapeUnicode decodes a \uXXXX escape at the start of raw,
// combining surrogate pairs, and returns the rune plus the number of
// bytes consumed.
func unescapeUnicode(raw []byte) (rune, int, error) {
	hi, err := hex4(raw)
	if err != nil {
		return 0, 0, err
	}
	if !utf16.IsSurrogate(hi) {
		return hi, 6, nil
	}
	if len(raw) >= 12 && raw[6] == '\\' && raw[7] == 'u' {
		lo, err := hex4(raw[6:])
		if err == nil {
			if r := utf16.DecodeRune(hi, lo); r != utf8.RuneError {
				return r, 12, nil
			}
		}
	}
	// Unpaired surrogates decode to the replacement character, the
	// same behavior as encoding/json.
	return utf8.RuneError, 6, nil
}

// hex4 parses the XXXX of a \uXXXX escape at the start of raw.
func hex4(raw []byte) (rune, error) {
	if len(raw) < 6 {
		return 0, fmt.Errorf("unescape string: truncated unicode escape")
	}
	v, err := strconv.ParseUint(string(raw[2:6]), 16, 32)
	if err != nil {
		return 0, fmt.Errorf("unescape string: %w", err)
	}
	return rune(v), nil
}
