package backend_dto

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// FlexTime accepts the two shapes the backend emits for a time of day, either
// a "HH:MM" / "HH:MM:SS" string or a structured {"hour": h, "minute": m}
// object, and normalizes both to "HH:MM".
type FlexTime struct {
	Value string
	Valid bool
}

type structuredTime struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

func (t *FlexTime) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" || trimmed == `""` {
		t.Value = ""
		t.Valid = false
		return nil
	}

	if strings.HasPrefix(trimmed, `"`) {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		normalized, err := normalizeClockString(raw)
		if err != nil {
			return err
		}
		t.Value = normalized
		t.Valid = true
		return nil
	}

	var structured structuredTime
	if err := json.Unmarshal(data, &structured); err != nil {
		return err
	}
	if structured.Hour < 0 || structured.Hour > 23 || structured.Minute < 0 || structured.Minute > 59 {
		return fmt.Errorf("time out of range: hour=%d minute=%d", structured.Hour, structured.Minute)
	}
	t.Value = fmt.Sprintf("%02d:%02d", structured.Hour, structured.Minute)
	t.Valid = true
	return nil
}

func (t FlexTime) MarshalJSON() ([]byte, error) {
	if !t.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(t.Value)
}

func normalizeClockString(raw string) (string, error) {
	parts := strings.Split(strings.TrimSpace(raw), ":")
	if len(parts) < 2 {
		return "", fmt.Errorf("malformed time of day %q", raw)
	}
	var hour, minute int
	if _, err := fmt.Sscanf(parts[0]+":"+parts[1], "%d:%d", &hour, &minute); err != nil {
		return "", fmt.Errorf("malformed time of day %q", raw)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return "", fmt.Errorf("time out of range %q", raw)
	}
	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}
