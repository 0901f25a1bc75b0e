package wary

import "iter"

// Frame records that a named parse operation was being attempted over
// a span when a failure escaped its scope. Frames store offsets only,
// never slices of the input, so a chain can safely outlive the bytes
// it was recorded against and be rendered against an Input supplied at
// render time.
type Frame struct {
	Operation string
	Span      Span
}

// push records a frame as the error propagates outward through a
// Reader.Context scope. The innermost frame arrives first; each outer
// frame's span is widened to contain everything recorded before it,
// keeping the chain monotonic.
func (e *Error) push(f Frame) {
	f.Span = f.Span.Union(e.envelope())
	if !e.hasInner {
		e.inner = f
		e.hasInner = true
	}
	if fullContext {
		e.frames = append(e.frames, f)
	}
}

// envelope is the widest span recorded so far: the most recently
// pushed frame, or the terminal failure span when nothing has been
// pushed yet.
func (e *Error) envelope() Span {
	if fullContext && len(e.frames) > 0 {
		return e.frames[len(e.frames)-1].Span
	}
	if e.hasInner {
		return e.inner.Span
	}
	return e.span
}

// Frames yields the context chain outermost-first. The sequence is
// finite. When full context is disabled the chain
// degrades to a single synthetic frame covering the innermost recorded
// operation, so callers see the same interface either way.
func (e *Error) Frames() iter.Seq[Frame] {
	return func(yield func(Frame) bool) {
		if fullContext && len(e.frames) > 0 {
			for i := len(e.frames) - 1; i >= 0; i-- {
				if !yield(e.frames[i]) {
					return
				}
			}
			return
		}
		if e.hasInner {
			yield(e.inner)
		}
	}
}

// FrameCount returns the number of frames Frames will yield.
func (e *Error) FrameCount() int {
	if fullContext && len(e.frames) > 0 {
		return len(e.frames)
	}
	if e.hasInner {
		return 1
	}
	return 0
}

// InnermostSpan returns the span of the innermost recorded operation,
// or the terminal failure span when no operation scope saw the error.
func (e *Error) InnermostSpan() Span {
	if e.hasInner {
		return e.inner.Span
	}
	return e.span
}

// OperationNames returns the operation names of the chain,
// outermost-first.
func (e *Error) OperationNames() []string {
	var names []string
	for f := range e.Frames() {
		names = append(names, f.Operation)
	}
	return names
}
