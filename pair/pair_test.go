package pair

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakePair(t *testing.T) {
	p := MakePair(1, "a")

	assert.Equal(t, 1, Head(p))
	assert.Equal(t, "a", Tail(p))
}

func TestSwap(t *testing.T) {
	p := MakePair(1, "a")
	s := Swap(p)

	assert.Equal(t, "a", Head(s))
	assert.Equal(t, 1, Tail(s))
}
