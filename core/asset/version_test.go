package asset

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"v9", "v10", -1},
		{"v10", "v9", 1},
		{"v001", "v002", -1},
		{"v010", "v9", 1},
		{"v2", "v2", 0},
		{"v002", "v2", -1},
		{"v1", "v1a", -1},
		{"v1b", "v1a", 1},
		{"1.9", "1.10", -1},
		{"va", "vb", -1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CompareVersions(tt.a, tt.b), "%s vs %s", tt.a, tt.b)
	}
}

func TestCompareVersions_Sort(t *testing.T) {
	versions := []string{"v10", "v9", "v100", "v1", "v011"}
	slices.SortFunc(versions, CompareVersions)
	assert.Equal(t, []string{"v1", "v9", "v10", "v011", "v100"}, versions)
}
