package commalist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	assert.Equal(t, []string{"Flutter", "Dart", "Firebase"}, Split("Flutter, Dart,  Firebase"))
	assert.Equal(t, []string{"solo"}, Split("solo"))
	assert.Equal(t, []string{}, Split(""))
	assert.Equal(t, []string{}, Split(" , , "))
	assert.Equal(t, []string{"a", "b"}, Split(",a,,b,"))
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "Flutter, Dart, Firebase", Join([]string{"Flutter", "Dart", "Firebase"}))
	assert.Equal(t, "", Join(nil))
}

func TestRoundTrip(t *testing.T) {
	entered := "Flutter, Dart,  Firebase"
	items := Split(entered)
	assert.Equal(t, "Flutter, Dart, Firebase", Join(items))
	// Canonical form is a fixed point.
	assert.Equal(t, items, Split(Join(items)))
}
