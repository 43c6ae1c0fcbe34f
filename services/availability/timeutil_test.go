package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeToMinutes(t *testing.T) {
	tests := []struct {
		value   string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:00", 540, false},
		{"17:00", 1020, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"09:60", 0, true},
		{"-1:30", 0, true},
		{"9am", 0, true},
		{"09:00:00", 0, true},
		{"", 0, true},
		{"ab:cd", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := TimeToMinutes(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				var malformed *MalformedTimeError
				assert.ErrorAs(t, err, &malformed)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMinutesToTime(t *testing.T) {
	assert.Equal(t, "00:00", MinutesToTime(0))
	assert.Equal(t, "09:05", MinutesToTime(545))
	assert.Equal(t, "17:00", MinutesToTime(1020))
	assert.Equal(t, "23:59", MinutesToTime(1439))
	assert.Equal(t, "24:00", MinutesToTime(MinutesPerDay))
}

func TestParseDate(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	assert.NoError(t, err)

	day, err := ParseDate("2026-08-31", loc)
	assert.NoError(t, err)
	assert.Equal(t, time.Monday, day.Weekday())
	assert.Equal(t, 0, day.Hour())
	assert.Equal(t, loc, day.Location())

	_, err = ParseDate("31-08-2026", loc)
	assert.Error(t, err)
	_, err = ParseDate("2026-13-40", loc)
	assert.Error(t, err)
}

func TestMinuteSpan(t *testing.T) {
	loc := time.UTC
	date := "2026-08-31"
	at := func(hour, min int) time.Time {
		return time.Date(2026, 8, 31, hour, min, 0, 0, loc)
	}

	t.Run("inside the day", func(t *testing.T) {
		from, to, ok := MinuteSpan(at(12, 0), at(13, 0), date, loc)
		assert.True(t, ok)
		assert.Equal(t, 720, from)
		assert.Equal(t, 780, to)
	})

	t.Run("starts the previous day", func(t *testing.T) {
		from, to, ok := MinuteSpan(at(12, 0).AddDate(0, 0, -1), at(1, 30), date, loc)
		assert.True(t, ok)
		assert.Equal(t, 0, from)
		assert.Equal(t, 90, to)
	})

	t.Run("runs past midnight", func(t *testing.T) {
		from, to, ok := MinuteSpan(at(23, 0), at(2, 0).AddDate(0, 0, 1), date, loc)
		assert.True(t, ok)
		assert.Equal(t, 1380, from)
		assert.Equal(t, MinutesPerDay, to)
	})

	t.Run("entirely on another day", func(t *testing.T) {
		_, _, ok := MinuteSpan(at(9, 0).AddDate(0, 0, 2), at(10, 0).AddDate(0, 0, 2), date, loc)
		assert.False(t, ok)
	})

	t.Run("ends at midnight of the target day", func(t *testing.T) {
		_, _, ok := MinuteSpan(at(22, 0).AddDate(0, 0, -1), at(0, 0), date, loc)
		assert.False(t, ok)
	})

	t.Run("empty interval", func(t *testing.T) {
		_, _, ok := MinuteSpan(at(12, 0), at(12, 0), date, loc)
		assert.False(t, ok)
	})

	t.Run("converts across timezones", func(t *testing.T) {
		ny, err := time.LoadLocation("America/New_York")
		assert.NoError(t, err)
		// 16:00 UTC on 2026-08-31 is 12:00 in New York (EDT).
		from, to, ok := MinuteSpan(at(16, 0), at(17, 0), date, ny)
		assert.True(t, ok)
		assert.Equal(t, 720, from)
		assert.Equal(t, 780, to)
	})
}
