// Package profile lets a line profiler be used as a decorator.
//
// A profiler only has to implement LineProfiler. Wrap registers a target with
// it and brackets every invocation with EnableByCount and DisableByCount.
// Failures are never masked: errors and panics reach the caller unchanged,
// and the disable side of the bracket still runs.
package profile

import (
	"iter"

	"github.com/on-the-ground/profwrap/callable"
)

// LineProfiler is what a profiler exposes to be driven by Wrap.
//
// Implementations count enables: counting is active while more enables than
// disables have been seen. Calls are not synchronized by this package.
type LineProfiler interface {
	AddFunction(target callable.Target)
	EnableByCount()
	DisableByCount()
}

// Wrap registers c with p and returns c bracketed by p's enable/disable
// calls. Nothing is enabled until the returned callable is invoked.
//
// For a generator, counting is enabled once when the sequence starts being
// driven and disabled once when it ends, whether it is exhausted, fails,
// panics or is abandoned with break.
func Wrap[A any, R any](p LineProfiler, c callable.Callable[A, R]) callable.Callable[A, R] {
	p.AddFunction(c)
	named := callable.Like(c)

	if c.Kind() == callable.KindGenerator {
		return callable.Generator(func(a A) iter.Seq2[R, error] {
			return bracketSeq(p, func() iter.Seq2[R, error] {
				return c.Iter(a)
			})
		}, named)
	}
	return callable.Func(func(a A) (R, error) {
		return bracketCall(p, func() (R, error) {
			return c.Call(a)
		})
	}, named)
}

// WrapProcess is Wrap for process-shaped targets.
func WrapProcess[C any, ID any, R any](p LineProfiler, proc callable.Process[C, ID, R]) callable.Process[C, ID, R] {
	p.AddFunction(proc)
	named := callable.Like(proc)

	if proc.Kind() == callable.KindGenerator {
		return callable.ProcessGenerator(func(c C, id ID) iter.Seq2[R, error] {
			return bracketSeq(p, func() iter.Seq2[R, error] {
				return proc.Iter(c, id)
			})
		}, named)
	}
	return callable.ProcessFunc(func(c C, id ID) (R, error) {
		return bracketCall(p, func() (R, error) {
			return proc.Call(c, id)
		})
	}, named)
}

// Decorator turns p into a reusable decorator for callables of one type.
func Decorator[A any, R any](p LineProfiler) func(callable.Callable[A, R]) callable.Callable[A, R] {
	return func(c callable.Callable[A, R]) callable.Callable[A, R] {
		return Wrap(p, c)
	}
}

func bracketCall[R any](p LineProfiler, fn func() (R, error)) (R, error) {
	p.EnableByCount()
	defer p.DisableByCount()
	return fn()
}

func bracketSeq[R any](p LineProfiler, open func() iter.Seq2[R, error]) iter.Seq2[R, error] {
	return func(yield func(R, error) bool) {
		p.EnableByCount()
		defer p.DisableByCount()

		for v, err := range open() {
			if !yield(v, err) {
				return
			}
		}
	}
}
