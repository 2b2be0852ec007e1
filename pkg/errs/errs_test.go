package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckIndex(t *testing.T) {
	tests := []struct {
		name  string
		index int
		size  int
		ok    bool
	}{
		{"first", 0, 3, true},
		{"last", 2, 3, true},
		{"negative", -1, 3, false},
		{"equal to size", 3, 3, false},
		{"empty", 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckIndex("get", tt.index, tt.size)
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrIndexOutOfBounds)
			assert.NotErrorIs(t, err, ErrEmptyContainer)
		})
	}
}

func TestIndexErrorFields(t *testing.T) {
	err := CheckIndex("set", 7, 2)

	var idxErr *IndexError
	require.True(t, errors.As(err, &idxErr))
	assert.Equal(t, "set", idxErr.Op)
	assert.Equal(t, 7, idxErr.Index)
	assert.Equal(t, 2, idxErr.Size)
	assert.Equal(t, "set: index 7 out of bounds for size 2", err.Error())
}
