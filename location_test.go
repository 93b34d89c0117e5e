package efjson

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursorToLocation(t *testing.T) {
	for _, test := range []struct {
		c        cursor
		expected Location
	}{
		{cursorRootStart, LocationRoot},
		{cursorKeyFirstStart, LocationKey},
		{cursorValueStart, LocationValue},
		{cursorElementEnd, LocationElement},
		{cursorEOF, LocationRoot},
	} {
		t.Run(fmt.Sprintf("%v", test.c), func(t *testing.T) {
			assert.Equal(t, test.expected, test.c.toLocation())
		})
	}
}

func TestCursorIsFirstSlot(t *testing.T) {
	assert.True(t, cursorKeyFirstStart.isFirstSlot())
	assert.True(t, cursorElementFirstStart.isFirstSlot())
	assert.False(t, cursorKeyStart.isFirstSlot())
	assert.False(t, cursorValueStart.isFirstSlot())
}

func TestNextLocationTableAdvancesStartToEnd(t *testing.T) {
	for _, test := range []struct {
		start cursor
		end   cursor
	}{
		{cursorRootStart, cursorRootEnd},
		{cursorKeyFirstStart, cursorKeyEnd},
		{cursorKeyStart, cursorKeyEnd},
		{cursorValueStart, cursorValueEnd},
		{cursorElementFirstStart, cursorElementEnd},
		{cursorElementStart, cursorElementEnd},
	} {
		t.Run(fmt.Sprintf("%v", test.start), func(t *testing.T) {
			assert.Equal(t, test.end, nextLocationTable[test.start])
		})
	}
}
