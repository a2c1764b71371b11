// Package stream provides the lazy producer abstraction shared by every
// enumerator in proplog: truthtable, cnf, and tseitin all expose a
// Stream[T] (truthtable and cnf produce values lazily; tseitin builds
// its clause slice up front and wraps it with FromSlice). A Stream wraps a
// single-pass Producer and can optionally be put into caching mode, at
// which point a full pass records every yielded value so that later
// passes can Rewind and replay from the cache instead of re-driving
// (or failing to re-drive) the underlying Producer.
package stream

import "errors"

// ErrStreamComparison is returned by ValueOrErr when a caller reads a
// Stream's current value without first confirming Valid(). In the
// teacher's C++-flavored ancestry this guarded against comparing a
// live iterator against anything other than the end sentinel; Go's
// static typing already rejects most of those comparisons at compile
// time (Stream[T] holds slices and is not comparable), so the one
// place the mistake can still happen dynamically is "read Value from
// an iterator nobody checked was still valid" — that is what this
// error now reports.
var ErrStreamComparison = errors.New("stream: read from an exhausted stream")

// Producer is single-pass lazy iteration over a sequence of T: Valid
// reports whether there is a current value, Next advances to the next
// one (which may not exist), and Value reads the current one.
type Producer[T any] interface {
	Valid() bool
	Next() bool
	Value() T
}

// Stream wraps a Producer, adding an optional caching mode.
type Stream[T any] struct {
	src      Producer[T]
	caching  bool
	cache    []T
	consumed bool
	replay   bool
	pos      int
}

// New wraps p in a Stream with caching disabled.
func New[T any](p Producer[T]) *Stream[T] {
	return &Stream[T]{src: p}
}

// sliceProducer adapts an already-materialized slice to Producer, for
// callers (the Tseitin producer, tests) that build their result
// eagerly rather than driving a real iteration.
type sliceProducer[T any] struct {
	vals []T
	pos  int
}

func (s *sliceProducer[T]) Valid() bool { return s.pos < len(s.vals) }
func (s *sliceProducer[T]) Next() bool  { s.pos++; return s.Valid() }
func (s *sliceProducer[T]) Value() T    { return s.vals[s.pos] }

// FromSlice wraps vals as a single-pass Stream yielding them in order.
func FromSlice[T any](vals []T) *Stream[T] {
	return New[T](&sliceProducer[T]{vals: vals})
}

// EnableCache turns on caching: every value this Stream yields from
// here on is recorded, so that once the underlying Producer is fully
// consumed, Rewind can replay the recorded sequence instead of
// re-driving (or failing to re-drive) a single-pass Producer.
func (s *Stream[T]) EnableCache() {
	s.caching = true
}

// Caching reports whether caching is enabled.
func (s *Stream[T]) Caching() bool { return s.caching }

// Valid reports whether there is a current value.
func (s *Stream[T]) Valid() bool {
	if s.replay {
		return s.pos < len(s.cache)
	}
	return s.src.Valid()
}

// Value reads the current value. Calling it when Valid() is false is
// a programming error (the underlying Producer's behavior is
// undefined); use ValueOrErr for a checked read.
func (s *Stream[T]) Value() T {
	if s.replay {
		return s.cache[s.pos]
	}
	return s.src.Value()
}

// ValueOrErr reads the current value, or ErrStreamComparison if the
// Stream is not Valid.
func (s *Stream[T]) ValueOrErr() (T, error) {
	if !s.Valid() {
		var zero T
		return zero, ErrStreamComparison
	}
	return s.Value(), nil
}

// Next advances to the next value and reports whether one exists.
// While caching, the value being left behind is recorded first; once
// the underlying Producer is exhausted for the first time, the Stream
// switches into replay mode starting from the beginning of the cache.
func (s *Stream[T]) Next() bool {
	if s.replay {
		s.pos++
		return s.pos < len(s.cache)
	}
	if s.caching && s.src.Valid() {
		s.cache = append(s.cache, s.src.Value())
	}
	ok := s.src.Next()
	if !ok {
		s.consumed = true
		if s.caching {
			s.replay = true
			s.pos = 0
		}
	}
	return ok
}

// Rewind restarts iteration from the beginning of the cache. It
// requires caching to be enabled and the underlying Producer to have
// been fully consumed at least once; otherwise it reports false and
// does nothing.
func (s *Stream[T]) Rewind() bool {
	if !s.caching || !s.consumed {
		return false
	}
	s.replay = true
	s.pos = 0
	return true
}

// Collect drains the Stream into a slice, in yield order. If caching
// is enabled, the Stream ends up in replay mode afterward.
func (s *Stream[T]) Collect() []T {
	var out []T
	for s.Valid() {
		out = append(out, s.Value())
		if !s.Next() {
			break
		}
	}
	return out
}

// Each calls fn with every value the Stream yields, stopping early if
// fn returns false.
func (s *Stream[T]) Each(fn func(T) bool) {
	for s.Valid() {
		if !fn(s.Value()) {
			return
		}
		if !s.Next() {
			break
		}
	}
}
