package report_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/on-the-ground/profwrap/report"
	"github.com/stretchr/testify/assert"
)

func TestMessage(t *testing.T) {
	msg := report.Message("DummyTransform", "abc-123", errors.New("catch me"))
	assert.Equal(t, "WARN: Error caught while profiling DummyTransform.process for entity ID abc-123: catch me", msg)
}

func TestCategoryOf(t *testing.T) {
	assert.Equal(t, "dummyTransformFunc", report.CategoryOf(dummyTransformFunc{}))
	assert.Equal(t, "dummyTransformFunc", report.CategoryOf(&dummyTransformFunc{}))
	assert.Equal(t, "MyTransform", report.CategoryOf(namedTransform{}))
	assert.Equal(t, "<nil>", report.CategoryOf(nil))
}

func TestPanicError(t *testing.T) {
	cause := errors.New("root cause")

	err := &report.PanicError{Value: cause}
	assert.Equal(t, "root cause", err.Error())
	assert.ErrorIs(t, err, cause)

	err = &report.PanicError{Value: 42}
	assert.Equal(t, "42", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestNewReporter_PrintsBareLine(t *testing.T) {
	var out bytes.Buffer
	logger := report.NewReporter(&out)

	logger.Info("below warn level")
	logger.Warn("first")
	logger.Error("second")

	assert.Equal(t, "first\nsecond\n", out.String())
}
