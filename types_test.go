package main

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSortKey(t *testing.T) {
	tests := []struct {
		in   string
		want SortKey
	}{
		{"mtime", SortByModTime},
		{"MTime", SortByModTime},
		{"size", SortBySize},
		{" fsize ", SortBySize},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSortKey(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NotEmpty(t, got.String())
		})
	}

	_, err := ParseSortKey("name")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestSortKey_String(t *testing.T) {
	assert.Equal(t, "mtime", SortByModTime.String())
	assert.Equal(t, "size", SortBySize.String())
	assert.Equal(t, "SortKey(7)", SortKey(7).String())
}

func TestTraversalError(t *testing.T) {
	err := error(&TraversalError{Path: "d/x", Err: os.ErrPermission})
	assert.Equal(t, "traversal failed at d/x: permission denied", err.Error())
	assert.True(t, errors.Is(err, os.ErrPermission))
}
