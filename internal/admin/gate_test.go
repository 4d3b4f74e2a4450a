package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIDs(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []int64
		wantErr bool
	}{
		{name: "single id", raw: "825042510", want: []int64{825042510}},
		{name: "multiple ids", raw: "825042510,8160172817", want: []int64{825042510, 8160172817}},
		{name: "spaces around ids", raw: " 1 , 2 ", want: []int64{1, 2}},
		{name: "trailing comma", raw: "1,2,", want: []int64{1, 2}},
		{name: "empty", raw: "", want: nil},
		{name: "not a number", raw: "1,abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseIDs(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGateIsAdmin(t *testing.T) {
	gate := NewGate([]int64{10, 20})

	assert.True(t, gate.IsAdmin(10))
	assert.True(t, gate.IsAdmin(20))
	assert.False(t, gate.IsAdmin(30))
	assert.False(t, gate.IsAdmin(0))
}

func TestGateEmpty(t *testing.T) {
	gate := NewGate(nil)

	assert.False(t, gate.IsAdmin(1))
}
