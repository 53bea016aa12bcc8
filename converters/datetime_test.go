package converters

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "YYYYMMDD", input: "20240115", want: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{name: "YYYY-MM-DD", input: "2024-01-15", want: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{name: "slashes", input: "2024/01/15", wantErr: true},
		{name: "too short", input: "2024", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "invalid month", input: "20241315", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v", got)
		})
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantHour   int
		wantMinute int
		wantErr    bool
	}{
		{name: "HH:MM", input: "12:34", wantHour: 12, wantMinute: 34},
		{name: "HHMM", input: "0905", wantHour: 9, wantMinute: 5},
		{name: "misplaced colon", input: "1:234", wantErr: true},
		{name: "out of range", input: "2561", wantErr: true},
		{name: "too long", input: "12:345", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseClock(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHour, got.Hour())
			assert.Equal(t, tt.wantMinute, got.Minute())
		})
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "", FormatDate(time.Time{}))
	assert.Equal(t, "2024-01-15", FormatDate(time.Date(2024, 1, 15, 23, 0, 0, 0, time.UTC)))
}
