package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewKnownIDSet(t *testing.T) {
	set := NewKnownIDSet([]string{" 1 ", "2", "", "  ", "2"})

	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Contains("1"))
	assert.True(t, set.Contains("2"))
	assert.False(t, set.Contains("3"))
	assert.False(t, set.Contains(""))
}

func TestNewKnownIDSetEmpty(t *testing.T) {
	set := NewKnownIDSet(nil)
	assert.Equal(t, 0, set.Len())
	assert.False(t, set.Contains("1"))
}
