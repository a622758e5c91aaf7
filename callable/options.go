package callable

import "github.com/on-the-ground/profwrap/shared/helper"

type config struct {
	name string
	id   uintptr
}

// Option customizes how a target is classified.
type Option func(*config)

// WithName overrides the name derived from the target's runtime symbol.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// Like gives the new target the name and identity of t. Wrappers use it so
// that a wrapped target is still recognized as the one it wraps.
func Like(t Target) Option {
	return func(c *config) {
		c.name = t.Name()
		c.id = t.ID()
	}
}

func keep(cfg config) Option {
	return func(c *config) {
		*c = cfg
	}
}

func newConfig(target any, opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	if c.name == "" {
		c.name = helper.FuncName(target)
	}
	if c.id == 0 {
		c.id = helper.FuncPC(target)
	}
	return c
}
