package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCStringFitsWithTerminator(t *testing.T) {
	msg := strings.Repeat("x", BoundedCapacity-1)

	s, err := NewCString(msg)
	require.NoError(t, err)
	require.NoError(t, s.PushNull())

	assert.Equal(t, BoundedCapacity, s.Len())
	assert.True(t, s.Terminated())
	assert.Equal(t, msg+"\x00", string(s.View()))
}

func TestCStringOverflow(t *testing.T) {
	_, err := NewCString(strings.Repeat("x", BoundedCapacity))
	require.Error(t, err)

	var oe *OverflowError
	require.ErrorAs(t, err, &oe)
	assert.Equal(t, BoundedCapacity, oe.Capacity)
	assert.Equal(t, BoundedCapacity+1, oe.Need)
	assert.True(t, IsOverflow(err))
}

func TestCStringPushNullWhenFull(t *testing.T) {
	s, err := NewCString(strings.Repeat("y", BoundedCapacity-1))
	require.NoError(t, err)
	require.NoError(t, s.PushNull())

	// buffer is now full; a second terminator does not fit
	err = s.PushNull()
	assert.True(t, IsOverflow(err), "got %v", err)
	assert.Equal(t, BoundedCapacity, s.Len())
}

func TestCStringEmpty(t *testing.T) {
	s, err := NewCString("")
	require.NoError(t, err)
	assert.False(t, s.Terminated())
	assert.Equal(t, 0, s.Len())

	require.NoError(t, s.PushNull())
	assert.Equal(t, []byte{0}, s.View())
}

func TestCStringViewIsCapped(t *testing.T) {
	s, err := NewCString("abc")
	require.NoError(t, err)
	require.NoError(t, s.PushNull())

	v := s.View()
	assert.Equal(t, 4, cap(v), "view must not expose spare capacity")
}
