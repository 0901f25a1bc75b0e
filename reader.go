package wary

import (
	"bytes"
	"errors"
)

// Reader is a cursor over an Input. It is the only component that
// advances position; every consuming operation either succeeds and
// moves the cursor forward, or fails and leaves it exactly where it
// was. A Reader is exclusively owned by the parse that created it and
// must not be shared across goroutines.
type Reader struct {
	input Input
	pos   int
}

// NewReader returns a Reader positioned at the start of in.
func NewReader(in Input) *Reader {
	return &Reader{input: in}
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int {
	return r.pos
}

// AtEnd reports whether the cursor has reached the end of the input.
func (r *Reader) AtEnd() bool {
	return r.pos == r.input.Len()
}

// Remaining returns the unconsumed portion of the input without
// advancing the cursor.
func (r *Reader) Remaining() Input {
	return r.input.slice(r.pos, r.input.Len())
}

// TakeRemaining consumes and returns everything left.
func (r *Reader) TakeRemaining() Input {
	rest := r.Remaining()
	r.pos = r.input.Len()
	return rest
}

// Peek returns the next n bytes without advancing. With fewer than n
// bytes left it fails retryable with the exact shortfall.
func (r *Reader) Peek(n int) (Input, error) {
	rem := r.Remaining()
	if n < 0 {
		return Input{}, NewInvalid(r.cursorSpan(), "negative length requested")
	}
	if rem.Len() < n {
		return Input{}, NewIncomplete(rem.Span(), "enough input", Exact(n-rem.Len()))
	}
	head, _, err := rem.SplitAt(n)
	if err != nil {
		return Input{}, err
	}
	return head, nil
}

// PeekByte returns the next byte without advancing.
func (r *Reader) PeekByte() (byte, error) {
	rem := r.Remaining()
	if rem.IsEmpty() {
		return 0, NewIncomplete(rem.Span(), "one byte", Exact(1))
	}
	return rem.RawBytes()[0], nil
}

// Take consumes and returns the next n bytes. Failure semantics match
// Peek: the cursor is unchanged and the error carries Exact(n - left).
func (r *Reader) Take(n int) (Input, error) {
	head, err := r.Peek(n)
	if err != nil {
		return Input{}, err
	}
	r.pos += n
	return head, nil
}

// ReadByte consumes and returns the next byte. On text input the byte
// must be a whole character; reading into the middle of a multi-byte
// sequence is fatal.
func (r *Reader) ReadByte() (byte, error) {
	b, err := r.PeekByte()
	if err != nil {
		return 0, err
	}
	if err := r.advance(1); err != nil {
		return 0, err
	}
	return b, nil
}

// TakeWhile consumes the maximal prefix whose bytes satisfy pred. It
// never fails; matching nothing returns an empty Input with the cursor
// unchanged, which is distinct from running out of input.
func (r *Reader) TakeWhile(pred func(byte) bool) Input {
	head, _ := r.Remaining().SplitPrefix(pred)
	r.pos += head.Len()
	return head
}

// SkipWhile consumes like TakeWhile and returns the number of bytes
// skipped.
func (r *Reader) SkipWhile(pred func(byte) bool) int {
	return r.TakeWhile(pred).Len()
}

// TakeUntil consumes up to, but not including, the first occurrence of
// needle. If the needle is not found before the end of input the
// cursor stays put and the failure is retryable with an unknown
// requirement, since more bytes could still complete the needle.
func (r *Reader) TakeUntil(needle []byte) (Input, error) {
	rem := r.Remaining()
	i := rem.Find(needle)
	if i < 0 {
		return Input{}, NewIncomplete(rem.Span(), "terminator", Unknown())
	}
	head, _, err := rem.SplitAt(i)
	if err != nil {
		return Input{}, err
	}
	r.pos += i
	return head, nil
}

// TakeUntilByte is TakeUntil for a single byte needle.
func (r *Reader) TakeUntilByte(b byte) (Input, error) {
	rem := r.Remaining()
	i := rem.FindByte(b)
	if i < 0 {
		return Input{}, NewIncomplete(rem.Span(), "terminator", Unknown())
	}
	head, _, err := rem.SplitAt(i)
	if err != nil {
		return Input{}, err
	}
	r.pos += i
	return head, nil
}

// SkipUntil consumes up to the first occurrence of needle and returns
// the number of bytes skipped, leaving the cursor at the needle.
func (r *Reader) SkipUntil(needle []byte) (int, error) {
	head, err := r.TakeUntil(needle)
	if err != nil {
		return 0, err
	}
	return head.Len(), nil
}

// Skip consumes n bytes, discarding them.
func (r *Reader) Skip(n int) error {
	_, err := r.Take(n)
	return err
}

// Consume requires the next bytes to equal value and consumes them. A
// byte that differs is a fatal mismatch. Running out of input while
// the available bytes still match a prefix of value is retryable: the
// missing bytes could arrive later.
func (r *Reader) Consume(value []byte) error {
	rem := r.Remaining().RawBytes()
	n := min(len(rem), len(value))
	if !bytes.Equal(rem[:n], value[:n]) {
		j := 0
		for rem[j] == value[j] {
			j++
		}
		at := r.input.base + r.pos + j
		return NewExpected(Span{Start: at, End: at + 1}, string(value))
	}
	if len(rem) < len(value) {
		rest := r.Remaining().Span()
		return NewIncomplete(rest, string(value), Exact(len(value)-len(rem)))
	}
	return r.advance(len(value))
}

// ConsumeByte requires the next byte to equal b and consumes it.
func (r *Reader) ConsumeByte(b byte) error {
	got, err := r.PeekByte()
	if err != nil {
		return err
	}
	if got != b {
		at := r.input.base + r.pos
		return NewExpected(Span{Start: at, End: at + 1}, string([]byte{b}))
	}
	return r.advance(1)
}

// advance commits a cursor move of n bytes. On text input the new
// position must land on a UTF-8 boundary, otherwise Remaining would
// hand out a text-flavored view starting inside a multi-byte sequence.
// A move that would do so is a fatal failure and leaves the cursor
// unchanged.
func (r *Reader) advance(n int) error {
	if r.input.text && !r.input.isBoundary(r.pos+n) {
		at := r.input.base + r.pos + n
		return NewInvalid(Span{Start: at, End: at + 1}, "advance inside utf-8 sequence")
	}
	r.pos += n
	return nil
}

// Try runs op against a checkpoint of the cursor. On failure the
// original cursor is untouched, giving a full backtrack; on success
// the checkpoint's advanced cursor replaces the original.
func (r *Reader) Try(op func(*Reader) error) error {
	fork := *r
	if err := op(&fork); err != nil {
		return err
	}
	*r = fork
	return nil
}

// Any tries each alternative in order with Try semantics and commits
// the first that succeeds. When every alternative fails, a fatal
// failure is preferred over a retryable one — fatal means the bytes
// are deterministically wrong and more input cannot rescue that
// branch. Among failures of equal severity the one that progressed
// furthest into the input is kept; when all losing branches are also
// retryable their requirements are folded into the kept error with
// Combine, so the caller learns how much input would let every
// alternative decide.
//
// Streaming grammars whose alternatives cannot be told apart by their
// first bytes should dispatch on a peeked byte instead: a fatal
// mismatch in one alternative outranks a retryable truncation in
// another.
func (r *Reader) Any(ops ...func(*Reader) error) error {
	if len(ops) == 0 {
		return NewInvalid(r.cursorSpan(), "no alternatives to try")
	}
	var kept error
	for _, op := range ops {
		err := r.Try(op)
		if err == nil {
			return nil
		}
		kept = preferError(kept, err)
	}
	return kept
}

// Context runs op against this Reader under a named operation scope.
// On failure the propagating error gains a Frame recording the scope's
// name and the span it attempted; on success the result passes through
// untouched. This is the sole mechanism that populates the context
// chain.
func (r *Reader) Context(name string, op func(*Reader) error) error {
	start := r.pos
	err := op(r)
	if err == nil {
		return nil
	}
	var e *Error
	if !errors.As(err, &e) {
		return err
	}
	e.push(Frame{
		Operation: name,
		Span:      Span{Start: r.input.base + start, End: r.input.base + r.pos},
	})
	return e
}

// cursorSpan is the empty span at the current cursor position.
func (r *Reader) cursorSpan() Span {
	at := r.input.base + r.pos
	return Span{Start: at, End: at}
}

// preferError keeps the more decisive of two failures: fatal beats
// retryable, and later spans beat earlier ones. Non-*Error values are
// treated as fatal.
func preferError(kept, next error) error {
	if kept == nil {
		return next
	}
	ke, kok := AsError(kept)
	ne, nok := AsError(next)
	if !kok || !nok {
		if !kok {
			return kept
		}
		return next
	}
	if ke.IsFatal() != ne.IsFatal() {
		if ne.IsFatal() {
			return ne
		}
		return ke
	}
	winner, loser := ke, ne
	if ne.Span().Start > ke.Span().Start {
		winner, loser = ne, ke
	}
	if !winner.IsFatal() {
		winner.retry = Combine(winner.retry, loser.retry)
	}
	return winner
}

// ReadAll runs op over a fresh Reader and requires it to consume the
// whole input; trailing bytes fail with a fatal expectation covering
// the leftover span.
func ReadAll(in Input, op func(*Reader) error) error {
	r := NewReader(in)
	if err := r.Context("read all", op); err != nil {
		return err
	}
	if !r.AtEnd() {
		return NewExpected(r.Remaining().Span(), "no trailing input")
	}
	return nil
}

// ReadPartial runs op over a fresh Reader and returns whatever input
// is left for the caller to continue with.
func ReadPartial(in Input, op func(*Reader) error) (Input, error) {
	r := NewReader(in)
	if err := r.Context("read partial", op); err != nil {
		return Input{}, err
	}
	return r.TakeRemaining(), nil
}
