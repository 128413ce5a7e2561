package maybe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsJustIsNothing(t *testing.T) {
	assert.True(t, IsJust(Just(1)))
	assert.False(t, IsNothing(Just(1)))

	assert.True(t, IsNothing(Nothing[int]()))
	assert.False(t, IsJust(Nothing[int]()))
}

func TestNothingIsASingletonByValue(t *testing.T) {
	assert.Equal(t, Nothing[int](), Nothing[int]())
	assert.True(t, Equal(Nothing[string](), Nothing[string]()))
}

func TestJustRejectsAbsentPayload(t *testing.T) {
	assert.Panics(t, func() {
		var p *int
		Just(p)
	})
}

func TestBindOnNothingIgnoresFunction(t *testing.T) {
	called := false
	result := MonadBind(Nothing[int](), func(a int) Maybe[int] {
		called = true
		return Just(a + 1)
	})

	assert.False(t, called)
	assert.Equal(t, Nothing[int](), result)
}

func TestBindOnJustAppliesFunction(t *testing.T) {
	result := MonadBind(Just(41), func(a int) Maybe[int] {
		return Just(a + 1)
	})

	assert.Equal(t, Just(42), result)
}

func TestMap(t *testing.T) {
	assert.Equal(t, Just(4), Map(func(a int) int { return a * 2 })(Just(2)))
	assert.Equal(t, Nothing[int](), Map(func(a int) int { return a * 2 })(Nothing[int]()))
}

func TestHashDistinguishesJustFromNothingAndIsDeterministic(t *testing.T) {
	assert.Equal(t, Hash(Just("x")), Hash(Just("x")))
	assert.NotEqual(t, Hash(Just("x")), Hash(Nothing[string]()))
	assert.Equal(t, Hash(Nothing[int]()), Hash(Nothing[int]()))
}

func TestUnwrap(t *testing.T) {
	v, ok := Unwrap(Just("hi"))
	assert.True(t, ok)
	assert.Equal(t, "hi", v)

	_, ok2 := Unwrap(Nothing[string]())
	assert.False(t, ok2)
}
