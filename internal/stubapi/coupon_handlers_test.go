package stubapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		in       string
		expected int64
	}{
		{"2000.00", 200000},
		{"2000.5", 200050},
		{"10.005", 1001}, // half up, matching the client's normalization
		{"10.004", 1000},
		{"0", 0},
	}
	for _, tt := range tests {
		cents, err := parseMoney(tt.in)
		assert.NoError(t, err, tt.in)
		assert.Equal(t, tt.expected, cents, tt.in)
	}

	t.Run("Rejects garbage", func(t *testing.T) {
		_, err := parseMoney("abc")
		assert.Error(t, err)
	})
}
