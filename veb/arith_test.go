package veb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSizeOfHeight(t *testing.T) {
	cases := []struct {
		h    int
		want int
	}{
		{1, 1},
		{2, 3},
		{3, 7},
		{4, 15},
		{7, 127},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, sizeOfHeight(c.h), "h=%d", c.h)
	}
}

func TestLeavesOfHeight(t *testing.T) {
	cases := []struct {
		h    int
		want int
	}{
		{1, 1},
		{2, 2},
		{3, 4},
		{4, 8},
		{7, 64},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, leavesOfHeight(c.h), "h=%d", c.h)
	}
}

func TestSplitTopHeight(t *testing.T) {
	cases := []struct {
		h       int
		wantTop int
	}{
		{1, 1},
		{2, 1},
		{3, 2},
		{4, 2},
		{5, 3},
		{6, 3},
		{7, 4},
	}
	for _, c := range cases {
		got := splitTopHeight(c.h)
		assert.Equal(t, c.wantTop, got, "h=%d", c.h)
		assert.Equal(t, c.h, got+(c.h-got), "top+bot must reconstruct h")
	}
}

func TestIsOdd(t *testing.T) {
	assert.True(t, isOdd(1))
	assert.False(t, isOdd(2))
	assert.True(t, isOdd(3))
	assert.False(t, isOdd(4))
}
