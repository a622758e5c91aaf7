package callable

// Kind tells how a target produces its results. It is fixed once, when the
// target is classified, and wrappers dispatch on it instead of re-inspecting
// the target on every call.
type Kind uint8

const (
	// KindFunction produces a single final result.
	KindFunction Kind = iota
	// KindGenerator produces a lazy sequence of results, one activation per call.
	KindGenerator
)

func (k Kind) String() string {
	switch k {
	case KindFunction:
		return "function"
	case KindGenerator:
		return "generator"
	default:
		return "unknown"
	}
}

// Target is the identity of a classified callable, independent of its
// argument and result types. Profilers receive it on registration.
type Target interface {
	// ID is the entry PC of the classified function. Two targets share it
	// only when they run the same code.
	ID() uintptr
	Name() string
	Kind() Kind
}
