package callable

import (
	"fmt"
	"iter"

	"github.com/on-the-ground/profwrap/shared/helper"
)

// Process is a classified two-argument, process-shaped target.
//
// The first argument carries the category (typically the transform the step
// belongs to), the second is the identifier of the entity being processed.
type Process[C any, ID any, R any] struct {
	name string
	id   uintptr
	kind Kind
	fn   func(C, ID) (R, error)
	seq  func(C, ID) iter.Seq2[R, error]
}

// ProcessFunc classifies fn as a function-kind process.
func ProcessFunc[C any, ID any, R any](fn func(C, ID) (R, error), opts ...Option) Process[C, ID, R] {
	c := newConfig(fn, opts)
	return Process[C, ID, R]{name: c.name, id: c.id, kind: KindFunction, fn: fn}
}

// ProcessGenerator classifies seq as a generator-kind process.
func ProcessGenerator[C any, ID any, R any](seq func(C, ID) iter.Seq2[R, error], opts ...Option) Process[C, ID, R] {
	c := newConfig(seq, opts)
	return Process[C, ID, R]{name: c.name, id: c.id, kind: KindGenerator, seq: seq}
}

// ProcessOf classifies a two-argument target by its Go type, with the same
// shapes Of accepts for one argument.
func ProcessOf[C any, ID any, R any](target any, opts ...Option) (Process[C, ID, R], error) {
	named := keep(newConfig(target, opts))

	switch fn := target.(type) {
	case func(C, ID) (R, error):
		return ProcessFunc(fn, named), nil
	case func(C, ID) R:
		return ProcessFunc(func(c C, id ID) (R, error) {
			return fn(c, id), nil
		}, named), nil
	case func(C, ID) iter.Seq2[R, error]:
		return ProcessGenerator(fn, named), nil
	case func(C, ID) iter.Seq[R]:
		return ProcessGenerator(func(c C, id ID) iter.Seq2[R, error] {
			return withNilErrors(fn(c, id))
		}, named), nil
	default:
		return Process[C, ID, R]{}, fmt.Errorf("%w: %T", ErrUnsupportedShape, target)
	}
}

// MustProcessOf is the panic-on-failure variant of ProcessOf.
func MustProcessOf[C any, ID any, R any](target any, opts ...Option) Process[C, ID, R] {
	return helper.MustGet(ProcessOf[C, ID, R](target, opts...))
}

func (p Process[C, I, R]) ID() uintptr { return p.id }

func (p Process[C, ID, R]) Name() string { return p.name }

func (p Process[C, ID, R]) Kind() Kind { return p.kind }

// Call invokes the process once. A generator-kind process is drained.
func (p Process[C, ID, R]) Call(c C, id ID) (R, error) {
	if p.kind == KindGenerator {
		return drain(p.seq(c, id))
	}
	return p.fn(c, id)
}

// Iter returns a fresh activation of the process as a sequence.
func (p Process[C, ID, R]) Iter(c C, id ID) iter.Seq2[R, error] {
	if p.kind == KindGenerator {
		return p.seq(c, id)
	}
	return single(func() (R, error) {
		return p.fn(c, id)
	})
}

// Bind fixes the first argument, the way a method is bound to its receiver.
// The result keeps the name and kind of p.
func (p Process[C, ID, R]) Bind(c C) Callable[ID, R] {
	named := Like(p)
	if p.kind == KindGenerator {
		return Generator(func(id ID) iter.Seq2[R, error] {
			return p.seq(c, id)
		}, named)
	}
	return Func(func(id ID) (R, error) {
		return p.fn(c, id)
	}, named)
}
