package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNil(t *testing.T) {
	var nilPtr *int
	var nilMap map[string]int
	var nilSlice []int
	var nilFunc func()
	var nilChan chan int
	var nilErr error
	one := 1

	assert.True(t, IsNil(nilPtr))
	assert.True(t, IsNil(nilMap))
	assert.True(t, IsNil(nilSlice))
	assert.True(t, IsNil(nilFunc))
	assert.True(t, IsNil(nilChan))
	assert.True(t, IsNil(nilErr))
	assert.True(t, IsNil[any](nil))

	assert.False(t, IsNil(&one))
	assert.False(t, IsNil(0))
	assert.False(t, IsNil(""))
	assert.False(t, IsNil(struct{}{}))
	assert.False(t, IsNil([]int{}))
	assert.False(t, IsNil[any](0))
}
