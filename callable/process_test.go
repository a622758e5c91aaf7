package callable_test

import (
	"iter"
	"testing"

	"github.com/on-the-ground/profwrap/callable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dummyTransformFunc struct{ offset int }

func (d dummyTransformFunc) Process(x int) int {
	return x + d.offset
}

type dummyTransformGenerator struct{}

func (dummyTransformGenerator) Process(x int) iter.Seq[int] {
	return dummyGen(x)
}

func TestProcessOf_MethodExpressionKeepsMethodName(t *testing.T) {
	proc := callable.MustProcessOf[dummyTransformFunc, int, int](dummyTransformFunc.Process)
	assert.Equal(t, "Process", proc.Name())
	assert.Equal(t, callable.KindFunction, proc.Kind())

	res, err := proc.Call(dummyTransformFunc{offset: 10}, 10)
	require.NoError(t, err)
	assert.Equal(t, 20, res)
}

func TestProcessOf_Generator(t *testing.T) {
	proc := callable.MustProcessOf[dummyTransformGenerator, int, int](dummyTransformGenerator.Process)
	assert.Equal(t, "Process", proc.Name())
	assert.Equal(t, callable.KindGenerator, proc.Kind())

	out, err := collect(proc.Iter(dummyTransformGenerator{}, 10))
	require.NoError(t, err)
	assert.Equal(t, []int{20, 30}, out)
}

func TestProcessOf_UnsupportedShape(t *testing.T) {
	_, err := callable.ProcessOf[any, int, int](dummyFunc)
	assert.ErrorIs(t, err, callable.ErrUnsupportedShape)
}

func TestProcess_BindKeepsIdentity(t *testing.T) {
	proc := callable.MustProcessOf[dummyTransformGenerator, int, int](dummyTransformGenerator.Process)
	bound := proc.Bind(dummyTransformGenerator{})

	assert.Equal(t, proc.Name(), bound.Name())
	assert.Equal(t, proc.Kind(), bound.Kind())
	assert.Equal(t, proc.ID(), bound.ID())

	out, err := collect(bound.Iter(10))
	require.NoError(t, err)
	assert.Equal(t, []int{20, 30}, out)

	fn := callable.MustProcessOf[dummyTransformFunc, int, int](dummyTransformFunc.Process).
		Bind(dummyTransformFunc{offset: 1})
	res, err := fn.Call(1)
	require.NoError(t, err)
	assert.Equal(t, 2, res)
}

func TestProcessOf_SameMethodNameDifferentIDs(t *testing.T) {
	fn := callable.MustProcessOf[dummyTransformFunc, int, int](dummyTransformFunc.Process)
	gen := callable.MustProcessOf[dummyTransformGenerator, int, int](dummyTransformGenerator.Process)

	assert.Equal(t, fn.Name(), gen.Name())
	assert.NotZero(t, fn.ID())
	assert.NotEqual(t, fn.ID(), gen.ID())

	again := callable.MustProcessOf[dummyTransformFunc, int, int](dummyTransformFunc.Process)
	assert.Equal(t, fn.ID(), again.ID())

	like := callable.ProcessFunc(func(d dummyTransformFunc, x int) (int, error) {
		return x, nil
	}, callable.Like(fn))
	assert.Equal(t, fn.ID(), like.ID())
	assert.Equal(t, fn.Name(), like.Name())
}
