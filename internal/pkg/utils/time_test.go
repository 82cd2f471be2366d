package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateAge(t *testing.T) {
	reference := time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local)

	t.Run("birthday already passed this year", func(t *testing.T) {
		assert.Equal(t, 35, CalculateAge("1990-01-15", reference))
	})

	t.Run("birthday later this year", func(t *testing.T) {
		assert.Equal(t, 34, CalculateAge("1990-06-15", reference))
	})

	t.Run("birthday today", func(t *testing.T) {
		assert.Equal(t, 35, CalculateAge("1990-03-10", reference))
	})

	t.Run("empty or malformed birth date yields zero", func(t *testing.T) {
		assert.Equal(t, 0, CalculateAge("", reference))
		assert.Equal(t, 0, CalculateAge("garbage", reference))
	})

	t.Run("future birth date yields zero", func(t *testing.T) {
		assert.Equal(t, 0, CalculateAge("2030-01-01", reference))
	})
}

func TestNormalizeClock(t *testing.T) {
	t.Run("HH:MM passes through", func(t *testing.T) {
		value, err := NormalizeClock("09:30")
		require.NoError(t, err)
		assert.Equal(t, "09:30", value)
	})

	t.Run("seconds are dropped", func(t *testing.T) {
		value, err := NormalizeClock("14:00:59")
		require.NoError(t, err)
		assert.Equal(t, "14:00", value)
	})

	t.Run("single-digit components are padded", func(t *testing.T) {
		value, err := NormalizeClock("9:5")
		require.NoError(t, err)
		assert.Equal(t, "09:05", value)
	})

	t.Run("out-of-range values are rejected", func(t *testing.T) {
		_, err := NormalizeClock("24:00")
		assert.Error(t, err)
	})

	t.Run("malformed input is rejected", func(t *testing.T) {
		_, err := NormalizeClock("soon")
		assert.Error(t, err)
	})
}

func TestIsPastDate(t *testing.T) {
	reference := time.Date(2025, 3, 10, 15, 30, 0, 0, time.Local)

	t.Run("yesterday is past", func(t *testing.T) {
		assert.True(t, IsPastDate(time.Date(2025, 3, 9, 0, 0, 0, 0, time.Local), reference))
	})

	t.Run("today is not past even late in the day", func(t *testing.T) {
		assert.False(t, IsPastDate(time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local), reference))
	})

	t.Run("tomorrow is not past", func(t *testing.T) {
		assert.False(t, IsPastDate(time.Date(2025, 3, 11, 0, 0, 0, 0, time.Local), reference))
	})
}

func TestSameCalendarDay(t *testing.T) {
	a := time.Date(2025, 3, 10, 1, 0, 0, 0, time.Local)
	b := time.Date(2025, 3, 10, 23, 59, 0, 0, time.Local)
	c := time.Date(2025, 3, 11, 0, 0, 0, 0, time.Local)

	assert.True(t, SameCalendarDay(a, b))
	assert.False(t, SameCalendarDay(b, c))
}
