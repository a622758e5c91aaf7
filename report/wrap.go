package report

import (
	"iter"

	"github.com/on-the-ground/profwrap/callable"
)

// Wrap returns p with failures absorbed and reported.
//
// The category printed is CategoryOf(c) and the entity ID is id, both taken
// from the call's arguments. The result keeps p's name and kind.
func Wrap[C any, ID any, R any](p callable.Process[C, ID, R], opts ...Option) callable.Process[C, ID, R] {
	cfg := NewConfig(opts...)
	named := callable.Like(p)

	reportFor := func(c C, id ID) func(error) {
		return func(err error) {
			cfg.report(CategoryOf(c), id, err)
		}
	}

	if p.Kind() == callable.KindGenerator {
		return callable.ProcessGenerator(func(c C, id ID) iter.Seq2[R, error] {
			return absorbSeq(func() iter.Seq2[R, error] {
				return p.Iter(c, id)
			}, reportFor(c, id))
		}, named)
	}
	return callable.ProcessFunc(func(c C, id ID) (R, error) {
		return absorbCall(func() (R, error) {
			return p.Call(c, id)
		}, reportFor(c, id))
	}, named)
}

// WrapFunc is Wrap for one-argument targets. The category is fixed and the
// entity ID is derived from the argument; a nil entityID uses the argument itself.
func WrapFunc[A any, R any](
	c callable.Callable[A, R],
	category string,
	entityID func(A) any,
	opts ...Option,
) callable.Callable[A, R] {
	cfg := NewConfig(opts...)
	named := callable.Like(c)
	if entityID == nil {
		entityID = func(a A) any { return a }
	}

	reportFor := func(a A) func(error) {
		return func(err error) {
			cfg.report(category, entityID(a), err)
		}
	}

	if c.Kind() == callable.KindGenerator {
		return callable.Generator(func(a A) iter.Seq2[R, error] {
			return absorbSeq(func() iter.Seq2[R, error] {
				return c.Iter(a)
			}, reportFor(a))
		}, named)
	}
	return callable.Func(func(a A) (R, error) {
		return absorbCall(func() (R, error) {
			return c.Call(a)
		}, reportFor(a))
	}, named)
}

// absorbCall never fails: an error or panic from fn is reported and replaced
// by the zero result.
func absorbCall[R any](fn func() (R, error), report func(error)) (res R, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero R
			res, err = zero, nil
			report(&PanicError{Value: r})
		}
	}()

	res, err = fn()
	if err != nil {
		var zero R
		report(err)
		return zero, nil
	}
	return res, nil
}

// absorbSeq forwards the values of the sequence built by open and ends it at
// the first error or panic, reporting it once. Panics raised by the consumer's
// loop body are not absorbed.
func absorbSeq[R any](open func() iter.Seq2[R, error], report func(error)) iter.Seq2[R, error] {
	return func(yield func(R, error) bool) {
		inYield := false
		defer func() {
			if inYield {
				return
			}
			if r := recover(); r != nil {
				report(&PanicError{Value: r})
			}
		}()

		for v, err := range open() {
			if err != nil {
				report(err)
				return
			}
			inYield = true
			more := yield(v, nil)
			inYield = false
			if !more {
				return
			}
		}
	}
}
