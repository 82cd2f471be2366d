package backend_dto

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexTimeUnmarshal(t *testing.T) {
	t.Run("plain HH:MM string", func(t *testing.T) {
		var ft FlexTime
		require.NoError(t, json.Unmarshal([]byte(`"09:30"`), &ft))
		assert.True(t, ft.Valid)
		assert.Equal(t, "09:30", ft.Value)
	})

	t.Run("seconds are dropped", func(t *testing.T) {
		var ft FlexTime
		require.NoError(t, json.Unmarshal([]byte(`"14:00:00"`), &ft))
		assert.Equal(t, "14:00", ft.Value)
	})

	t.Run("structured hour and minute object", func(t *testing.T) {
		var ft FlexTime
		require.NoError(t, json.Unmarshal([]byte(`{"hour":8,"minute":5}`), &ft))
		assert.Equal(t, "08:05", ft.Value)
	})

	t.Run("null is a valid absence", func(t *testing.T) {
		var ft FlexTime
		require.NoError(t, json.Unmarshal([]byte(`null`), &ft))
		assert.False(t, ft.Valid)
	})

	t.Run("empty string is a valid absence", func(t *testing.T) {
		var ft FlexTime
		require.NoError(t, json.Unmarshal([]byte(`""`), &ft))
		assert.False(t, ft.Valid)
	})

	t.Run("out-of-range clock is rejected", func(t *testing.T) {
		var ft FlexTime
		assert.Error(t, json.Unmarshal([]byte(`"25:00"`), &ft))
	})

	t.Run("out-of-range structured time is rejected", func(t *testing.T) {
		var ft FlexTime
		assert.Error(t, json.Unmarshal([]byte(`{"hour":12,"minute":75}`), &ft))
	})

	t.Run("garbage string is rejected", func(t *testing.T) {
		var ft FlexTime
		assert.Error(t, json.Unmarshal([]byte(`"soon"`), &ft))
	})
}

func TestFlexTimeMarshal(t *testing.T) {
	t.Run("valid time marshals as string", func(t *testing.T) {
		data, err := json.Marshal(FlexTime{Value: "10:00", Valid: true})
		require.NoError(t, err)
		assert.Equal(t, `"10:00"`, string(data))
	})

	t.Run("absent time marshals as null", func(t *testing.T) {
		data, err := json.Marshal(FlexTime{})
		require.NoError(t, err)
		assert.Equal(t, "null", string(data))
	})
}
