package callable

import (
	"errors"
	"fmt"
	"iter"

	"github.com/on-the-ground/profwrap/shared/helper"
)

var ErrUnsupportedShape = errors.New("unsupported callable shape")

// Callable is a classified one-argument target.
//
// It holds either a function (single result) or a generator (lazy sequence),
// never both. The zero value is not usable; build one with Func, Generator or Of.
type Callable[A any, R any] struct {
	name string
	id   uintptr
	kind Kind
	fn   func(A) (R, error)
	seq  func(A) iter.Seq2[R, error]
}

// Func classifies fn as a function-kind target.
func Func[A any, R any](fn func(A) (R, error), opts ...Option) Callable[A, R] {
	c := newConfig(fn, opts)
	return Callable[A, R]{name: c.name, id: c.id, kind: KindFunction, fn: fn}
}

// Generator classifies seq as a generator-kind target.
// Every call of seq must return a fresh sequence.
func Generator[A any, R any](seq func(A) iter.Seq2[R, error], opts ...Option) Callable[A, R] {
	c := newConfig(seq, opts)
	return Callable[A, R]{name: c.name, id: c.id, kind: KindGenerator, seq: seq}
}

// Of classifies target by its Go type.
//
// Supported shapes:
//
//	func(A) (R, error)           function
//	func(A) R                    function
//	func(A) iter.Seq2[R, error]  generator
//	func(A) iter.Seq[R]          generator
//
// Any other shape returns ErrUnsupportedShape.
func Of[A any, R any](target any, opts ...Option) (Callable[A, R], error) {
	named := keep(newConfig(target, opts))

	switch fn := target.(type) {
	case func(A) (R, error):
		return Func(fn, named), nil
	case func(A) R:
		return Func(func(a A) (R, error) {
			return fn(a), nil
		}, named), nil
	case func(A) iter.Seq2[R, error]:
		return Generator(fn, named), nil
	case func(A) iter.Seq[R]:
		return Generator(func(a A) iter.Seq2[R, error] {
			return withNilErrors(fn(a))
		}, named), nil
	default:
		return Callable[A, R]{}, fmt.Errorf("%w: %T", ErrUnsupportedShape, target)
	}
}

// MustOf is the panic-on-failure variant of Of.
func MustOf[A any, R any](target any, opts ...Option) Callable[A, R] {
	return helper.MustGet(Of[A, R](target, opts...))
}

func (c Callable[A, R]) ID() uintptr { return c.id }

func (c Callable[A, R]) Name() string { return c.name }

func (c Callable[A, R]) Kind() Kind { return c.kind }

// Call invokes the target once.
//
// A generator-kind target is drained: Call returns the last value produced
// and stops at the first error.
func (c Callable[A, R]) Call(a A) (R, error) {
	if c.kind == KindGenerator {
		return drain(c.seq(a))
	}
	return c.fn(a)
}

// Iter returns a fresh activation of the target as a sequence.
// A function-kind target yields its single result.
func (c Callable[A, R]) Iter(a A) iter.Seq2[R, error] {
	if c.kind == KindGenerator {
		return c.seq(a)
	}
	return single(func() (R, error) {
		return c.fn(a)
	})
}

func drain[R any](seq iter.Seq2[R, error]) (last R, err error) {
	for v, err := range seq {
		if err != nil {
			return last, err
		}
		last = v
	}
	return last, nil
}

func single[R any](fn func() (R, error)) iter.Seq2[R, error] {
	return func(yield func(R, error) bool) {
		yield(fn())
	}
}

func withNilErrors[R any](seq iter.Seq[R]) iter.Seq2[R, error] {
	return func(yield func(R, error) bool) {
		for v := range seq {
			if !yield(v, nil) {
				return
			}
		}
	}
}
