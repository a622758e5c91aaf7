package helper_test

import (
	"testing"

	"github.com/on-the-ground/profwrap/shared/helper"
	"github.com/stretchr/testify/assert"
)

type sample struct{}

func (*sample) Process() {}

func (sample) Value() {}

func topLevel() {}

type box[T any] struct{ v T }

func TestFuncName(t *testing.T) {
	s := &sample{}

	assert.Equal(t, "topLevel", helper.FuncName(topLevel))
	assert.Equal(t, "Process", helper.FuncName(s.Process))
	assert.Equal(t, "Process", helper.FuncName((*sample).Process))
	assert.Equal(t, "Value", helper.FuncName(sample.Value))
	assert.Equal(t, "", helper.FuncName(nil))
	assert.Equal(t, "", helper.FuncName(42))

	var nilFn func()
	assert.Equal(t, "", helper.FuncName(nilFn))
}

func TestFuncPC(t *testing.T) {
	s := &sample{}

	assert.NotZero(t, helper.FuncPC(topLevel))
	assert.Equal(t, helper.FuncPC(topLevel), helper.FuncPC(topLevel))
	assert.NotEqual(t, helper.FuncPC((*sample).Process), helper.FuncPC(sample.Value))
	assert.NotZero(t, helper.FuncPC(s.Process))
	assert.Zero(t, helper.FuncPC(nil))
	assert.Zero(t, helper.FuncPC(42))

	var nilFn func()
	assert.Zero(t, helper.FuncPC(nilFn))
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "sample", helper.TypeName(sample{}))
	assert.Equal(t, "sample", helper.TypeName(&sample{}))
	assert.Equal(t, "box", helper.TypeName(box[int]{}))
	assert.Equal(t, "int", helper.TypeName(1))
	assert.Equal(t, "<nil>", helper.TypeName(nil))
}

func TestGetTypedValueOf(t *testing.T) {
	v, err := helper.GetTypedValueOf[string]("ok")
	assert.NoError(t, err)
	assert.Equal(t, "ok", v)

	_, err = helper.GetTypedValueOf[string](1)
	assert.EqualError(t, err, "unexpected type: int")
}

func TestMustGet(t *testing.T) {
	assert.Equal(t, 1, helper.MustGet(1, nil))
	assert.Panics(t, func() {
		helper.MustGet(0, assert.AnError)
	})
}
