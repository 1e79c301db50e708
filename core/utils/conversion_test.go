package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

type label string

func (l label) String() string { return "label:" + string(l) }

func TestToFloat(t *testing.T) {
	tests := []struct {
		in   any
		want float64
		ok   bool
	}{
		{0.5, 0.5, true},
		{float32(2), 2, true},
		{3, 3, true},
		{int64(-4), -4, true},
		{uint8(7), 7, true},
		{json.Number("1.25"), 1.25, true},
		{" 2.5 ", 2.5, true},
		{[]byte("9"), 9, true},
		{"loud", 0, false},
		{nil, 0, false},
		{true, 0, false},
	}
	for _, tt := range tests {
		got, ok := ToFloat(tt.in)
		assert.Equal(t, tt.ok, ok, "%#v", tt.in)
		assert.Equal(t, tt.want, got, "%#v", tt.in)
	}
}

func TestToInt(t *testing.T) {
	i, ok := ToInt("42")
	assert.True(t, ok)
	assert.Equal(t, 42, i)

	i, ok = ToInt(3.9)
	assert.True(t, ok)
	assert.Equal(t, 3, i)

	_, ok = ToInt("x")
	assert.False(t, ok)
}

func TestToString(t *testing.T) {
	assert.Equal(t, "anonymous", ToString("anonymous"))
	assert.Equal(t, "raw", ToString([]byte("raw")))
	assert.Equal(t, "label:a", ToString(label("a")))
	assert.Equal(t, "12", ToString(12))
}

func TestToBool(t *testing.T) {
	tests := []struct {
		in   any
		want bool
		ok   bool
	}{
		{true, true, true},
		{"YES", true, true},
		{"on", true, true},
		{"off", false, true},
		{"", false, true},
		{1, true, true},
		{0.0, false, true},
		{"maybe", false, false},
		{nil, false, false},
	}
	for _, tt := range tests {
		got, ok := ToBool(tt.in)
		assert.Equal(t, tt.ok, ok, "%#v", tt.in)
		assert.Equal(t, tt.want, got, "%#v", tt.in)
	}
}
