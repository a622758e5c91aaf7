package report

import (
	"fmt"

	"github.com/on-the-ground/profwrap/shared/helper"
)

const messageFormat = "WARN: Error caught while profiling %s.process for entity ID %v: %v"

// Message formats the diagnostic printed for an absorbed failure.
func Message(category string, entityID any, err error) string {
	return fmt.Sprintf(messageFormat, category, entityID, err)
}

// Categorized lets a value choose the category shown in diagnostics.
type Categorized interface {
	Category() string
}

// CategoryOf returns v's category: Category() when v is Categorized,
// its bare runtime type name otherwise.
func CategoryOf(v any) string {
	if c, err := helper.GetTypedValueOf[Categorized](v); err == nil {
		return c.Category()
	}
	return helper.TypeName(v)
}

// PanicError carries a value recovered from a panicking target.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprint(e.Value)
}

func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
