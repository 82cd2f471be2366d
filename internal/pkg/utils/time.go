package utils

import (
	"fmt"
	"mediconnect-service/internal/pkg/constvars"
	"strings"
	"time"
)

// ParseLocalDate parses a naive year-month-day date. No timezone conversion
// is performed anywhere in the scheduling flow; dates compare by calendar day.
func ParseLocalDate(value string) (time.Time, error) {
	return time.ParseInLocation(constvars.DateLayout, strings.TrimSpace(value), time.Local)
}

func SameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func IsPastDate(date, reference time.Time) bool {
	y, m, d := reference.Date()
	startOfDay := time.Date(y, m, d, 0, 0, 0, 0, reference.Location())
	return date.Before(startOfDay)
}

// NormalizeClock reduces "HH:MM" and "HH:MM:SS" to "HH:MM".
func NormalizeClock(value string) (string, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) < 2 {
		return "", fmt.Errorf("malformed time of day %q", value)
	}
	var hour, minute int
	if _, err := fmt.Sscanf(parts[0]+":"+parts[1], "%d:%d", &hour, &minute); err != nil {
		return "", fmt.Errorf("malformed time of day %q", value)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return "", fmt.Errorf("time of day out of range %q", value)
	}
	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}

func CalculateAge(dateOfBirth string, reference time.Time) int {
	if dateOfBirth == "" {
		return 0
	}

	dob, err := time.Parse(constvars.DateLayout, dateOfBirth)
	if err != nil {
		return 0
	}

	age := reference.Year() - dob.Year()
	if reference.Month() < dob.Month() ||
		(reference.Month() == dob.Month() && reference.Day() < dob.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}
