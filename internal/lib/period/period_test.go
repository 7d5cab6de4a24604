package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Period
		wantErr bool
	}{
		{name: "по умолчанию месяц", in: "", want: Month},
		{name: "week", in: "week", want: Week},
		{name: "регистр не важен", in: "Quarter", want: Quarter},
		{name: "year", in: "year", want: Year},
		{name: "unknown", in: "decade", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContains(t *testing.T) {
	now := time.Date(2024, 11, 15, 12, 0, 0, 0, time.UTC)

	assert.True(t, Week.Contains(now, now.AddDate(0, 0, -6)))
	assert.False(t, Week.Contains(now, now.AddDate(0, 0, -8)))
	assert.False(t, Week.Contains(now, now.Add(time.Minute)))
	assert.True(t, Month.Contains(now, time.Date(2024, 10, 20, 0, 0, 0, 0, time.UTC)))
	assert.False(t, Month.Contains(now, time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, Quarter.Contains(now, time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, Year.Contains(now, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestSessionTime(t *testing.T) {
	got, err := SessionTime("2024-11-01", "09:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 11, 1, 9, 0, 0, 0, time.UTC), got)

	_, err = SessionTime("2024-11-01", "9am")
	assert.Error(t, err)
}

func TestWeekStart(t *testing.T) {
	// 2024-11-03 воскресенье, неделя начинается 2024-10-28
	sunday := time.Date(2024, 11, 3, 18, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 10, 28, 0, 0, 0, 0, time.UTC), WeekStart(sunday))

	monday := time.Date(2024, 10, 28, 7, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 10, 28, 0, 0, 0, 0, time.UTC), WeekStart(monday))
}

func TestSameMonth(t *testing.T) {
	a := time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, SameMonth(a, time.Date(2024, 11, 30, 23, 0, 0, 0, time.UTC)))
	assert.False(t, SameMonth(a, time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC)))
}
