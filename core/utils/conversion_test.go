package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToInt(t *testing.T) {
	tests := []struct {
		in   any
		want int
	}{
		{5, 5},
		{int64(7), 7},
		{uint32(3), 3},
		{float64(2.9), 2},
		{"42", 42},
		{" 10 ", 10},
		{[]byte("8"), 8},
		{"", 0},
		{"abc", 0},
		{nil, 0},
		{struct{}{}, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ToInt(tt.in), "%#v", tt.in)
	}
}

func TestToBool(t *testing.T) {
	truthy := []any{true, 1, int64(1), "1", "true", "TRUE", "y", "Yes", " on ", []byte("yes")}
	for _, v := range truthy {
		assert.True(t, ToBool(v), "%#v", v)
	}

	falsy := []any{false, 0, 2, "", "0", "no", "maybe", []byte("false"), nil, 1.0}
	for _, v := range falsy {
		assert.False(t, ToBool(v), "%#v", v)
	}
}
