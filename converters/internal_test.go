package converters

import (
	"math"
	"strconv"
	"testing"

	"github.com/Station-Manager/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckString(t *testing.T) {
	op := errors.Op("test.CheckString")

	tests := []struct {
		name    string
		input   any
		want    string
		wantErr bool
	}{
		{name: "valid string", input: "test string", want: "test string"},
		{name: "empty string", input: "", wantErr: true},
		{name: "non-string (int)", input: 123, wantErr: true},
		{name: "non-string (nil)", input: nil, wantErr: true},
		{name: "non-string (bool)", input: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CheckString(op, tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheckInt64(t *testing.T) {
	op := errors.Op("test.CheckInt64")

	tests := []struct {
		name    string
		input   any
		want    int64
		wantErr bool
	}{
		{name: "int64", input: int64(123), want: 123},
		{name: "int", input: 123, want: 123},
		{name: "int8", input: int8(-12), want: -12},
		{name: "uint16", input: uint16(123), want: 123},
		{name: "uint64 overflow", input: uint64(math.MaxUint64), wantErr: true},
		{name: "float64 with integer value", input: float64(14320000), want: 14320000},
		{name: "float64 with fraction", input: 1.5, wantErr: true},
		{name: "string", input: "123", wantErr: true},
		{name: "nil", input: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CheckInt64(op, tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheckGeneric(t *testing.T) {
	op := errors.Op("test.Check")

	got, err := Check[[]int](op, []int{1, 2})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, got)

	_, err = Check[[]int](op, []string{"a"})
	assert.Error(t, err)
}

func TestMust(t *testing.T) {
	atoi := Must(strconv.Atoi)

	assert.Equal(t, 42, atoi("42"))
	assert.Panics(t, func() { atoi("forty-two") })
}

func TestLift(t *testing.T) {
	length := Lift(func(s string) int { return len(s) })

	got, err := length("abcd")
	require.NoError(t, err)
	assert.Equal(t, 4, got)

	_, err = length(4)
	assert.Error(t, err)
}

func TestLiftErr(t *testing.T) {
	atoi := LiftErr(strconv.Atoi)

	got, err := atoi("17")
	require.NoError(t, err)
	assert.Equal(t, 17, got)

	_, err = atoi("seventeen")
	assert.Error(t, err)

	_, err = atoi(17)
	assert.Error(t, err)
}
