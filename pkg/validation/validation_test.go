package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsISODate(t *testing.T) {
	assert.True(t, IsISODate("2024-01-05"))
	assert.True(t, IsISODate(" 2024-02-29 "))
	assert.False(t, IsISODate("2023-02-29"))
	assert.False(t, IsISODate("05/01/2024"))
	assert.False(t, IsISODate(""))
}

func TestIsCoordinate(t *testing.T) {
	assert.True(t, IsCoordinate("48.87,2.33"))
	assert.True(t, IsCoordinate("-33.87,151.21"))
	assert.True(t, IsCoordinate("51,0"))
	assert.False(t, IsCoordinate("Paris"))
	assert.False(t, IsCoordinate("48.87"))
	assert.False(t, IsCoordinate(""))
}

func TestTrimAndValidate(t *testing.T) {
	v, ok := TrimAndValidate("  Par ")
	assert.True(t, ok)
	assert.Equal(t, "Par", v)

	_, ok = TrimAndValidate("   ")
	assert.False(t, ok)
	assert.False(t, IsNotEmpty("\t"))
}
