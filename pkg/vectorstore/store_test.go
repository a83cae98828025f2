package vectorstore

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowText(t *testing.T) {
	s := New(nil, nil, 10, 2)

	windows := s.windowText("abcdefghijklmnopqrst")
	require.Len(t, windows, 3)
	assert.Equal(t, "abcdefghij", windows[0])
	assert.Equal(t, "ijklmnopqr", windows[1])
	assert.Equal(t, "qrst", windows[2])
}

func TestWindowTextCountsRunesNotBytes(t *testing.T) {
	s := New(nil, nil, 5, 1)

	// 10 Hangul runes; byte-based slicing would split mid-character.
	windows := s.windowText("가나다라마바사아자차")
	require.Len(t, windows, 3)
	assert.Equal(t, "가나다라마", windows[0])
	assert.Equal(t, "마바사아자", windows[1])
	assert.Equal(t, "자차", windows[2])
}

func TestWindowTextShortInput(t *testing.T) {
	s := New(nil, nil, 150, 15)

	windows := s.windowText("short")
	require.Len(t, windows, 1)
	assert.Equal(t, "short", windows[0])
}

func TestWindowTextDropsWhitespaceWindows(t *testing.T) {
	s := New(nil, nil, 5, 0)

	windows := s.windowText("abcde     fghij")
	assert.Equal(t, []string{"abcde", "fghij"}, windows)
}

func TestWindowTextEmpty(t *testing.T) {
	s := New(nil, nil, 150, 15)
	assert.Nil(t, s.windowText(""))
}

func TestWindowTextOverlapAtLeastOneStep(t *testing.T) {
	// Overlap >= size must not loop forever; the step floors at one rune.
	s := New(nil, nil, 3, 5)

	windows := s.windowText("abcd")
	assert.Equal(t, []string{"abc", "bcd"}, windows)
}

func TestWindowTextDefaultParams(t *testing.T) {
	s := New(nil, nil, 150, 15)

	text := strings.Repeat("가", 300)
	windows := s.windowText(text)
	require.Len(t, windows, 3)
	assert.Len(t, []rune(windows[0]), 150)
	assert.Len(t, []rune(windows[1]), 150)
	// Last window holds the tail after two 135-rune steps.
	assert.Len(t, []rune(windows[2]), 30)
}
